package orderControllers

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/config"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// -------- Request Structs --------

type CheckoutItem struct {
	ProductID uint `json:"_id"`
}

type CheckoutRequest struct {
	Items                []CheckoutItem         `json:"items"`
	Quantities           map[string]int         `json:"quantities"`
	ShippingCost         float64                `json:"shippingCost"`
	AddressID            uint                   `json:"addressId"`
	TotalPrice           *float64               `json:"totalPrice"`
	ShippingOption       *models.ShippingOption `json:"shippingOption"`
	SelectedShippingCode string                 `json:"selectedShippingCode"`
}

type StatusProduct struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateStatusRequest struct {
	NewStatus    string          `json:"newStatus"`
	TrackingCode string          `json:"trackingCode"`
	Products     []StatusProduct `json:"products"`
}

type OrderPage struct {
	Orders      []models.Order
	TotalOrders int64
	TotalPages  int
	CurrentPage int
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.Preload("Items.Product").Preload("Address")
}

// -------- Core Logic --------

func validateCheckout(req *CheckoutRequest) error {
	if len(req.Items) == 0 {
		return apperrors.New(apperrors.Validation, "Items are required and should be a non-empty array.")
	}
	if len(req.Quantities) == 0 {
		return apperrors.New(apperrors.Validation, "Quantities are required and should be an object.")
	}
	if req.AddressID == 0 {
		return apperrors.New(apperrors.Validation, "Address ID is required.")
	}
	if req.TotalPrice == nil {
		return apperrors.New(apperrors.Validation, "Total price is required and should be a number.")
	}
	if req.ShippingOption == nil || req.ShippingOption.Service == "" ||
		req.ShippingOption.Description == "" || len(req.ShippingOption.Cost) == 0 {
		return apperrors.New(apperrors.Validation, "Shipping option is required.")
	}
	return nil
}

// CreateOrder validates the checkout request against the live catalog and
// snapshots the selection into a pending, unpaid order. Stock is only read
// here; it is committed at the transition into 'process'. The caller clears
// the affected cart entries afterwards.
func CreateOrder(db *gorm.DB, userID uint, req *CheckoutRequest) (*models.Order, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	var address models.Address
	err := db.Where("id = ? AND user_id = ?", req.AddressID, userID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.Validation, "Invalid address ID.")
	}
	if err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) != len(req.Items) {
		return nil, apperrors.New(apperrors.Validation, "Some products not found.")
	}

	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		key := strconv.FormatUint(uint64(item.ProductID), 10)
		quantity, ok := req.Quantities[key]
		if !ok {
			return nil, apperrors.Newf(apperrors.Validation, "Quantity for product ID %s is missing.", key)
		}
		if quantity <= 0 {
			return nil, apperrors.Newf(apperrors.Validation, "Invalid quantity for product ID %s.", key)
		}
		if productMap[item.ProductID].Stock < quantity {
			return nil, apperrors.Newf(apperrors.InsufficientStock, "Insufficient stock for product ID %s.", key)
		}
		orderItems = append(orderItems, models.OrderItem{ProductID: item.ProductID, Quantity: quantity})
	}

	order := models.Order{
		OrderRef:             generateOrderRef(),
		UserID:               userID,
		AddressID:            req.AddressID,
		Items:                orderItems,
		TotalPrice:           *req.TotalPrice,
		ShippingCost:         req.ShippingCost,
		ShippingOption:       *req.ShippingOption,
		SelectedShippingCode: req.SelectedShippingCode,
		Status:               models.OrderStatusPending,
		PaymentStatus:        models.PaymentStatusUnpaid,
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := preloadOrder(db).First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	broadcastOrderEvent("order.created", order)
	return &order, nil
}

// commitStock applies the stock decrement / sold increment batch for the
// 'process' transition. Conditional updates keep stock from going negative;
// any short product fails the whole batch.
func commitStock(tx *gorm.DB, products []StatusProduct) error {
	for _, p := range products {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", p.ProductID, p.Quantity).
			Updates(map[string]interface{}{
				"stock": gorm.Expr("stock - ?", p.Quantity),
				"sold":  gorm.Expr("sold + ?", p.Quantity),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.Newf(apperrors.InsufficientStock, "Insufficient stock for product ID %d.", p.ProductID)
		}
	}
	return nil
}

// UpdateOrderStatus advances the order along the lifecycle graph. The stock
// side effect of the 'process' transition is all-or-nothing: a failing
// product rolls back the transition entirely.
func UpdateOrderStatus(db *gorm.DB, orderID uint, req *UpdateStatusRequest) (*models.Order, error) {
	if req.NewStatus == "" {
		return nil, apperrors.New(apperrors.Validation, "New status is required.")
	}
	newStatus, ok := models.ParseOrderStatus(req.NewStatus)
	if !ok {
		return nil, apperrors.New(apperrors.Validation, "Invalid status value.")
	}

	var order models.Order
	err := db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Order not found.")
	}
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.Newf(apperrors.InvalidTransition,
			"Cannot change status from '%s' to '%s'.", order.Status, newStatus)
	}

	if newStatus == models.OrderStatusOnDelivery {
		if req.TrackingCode == "" {
			return nil, apperrors.New(apperrors.Validation, "Tracking code is required when changing status to 'ondelivery'.")
		}
		order.TrackingCode = req.TrackingCode
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if newStatus == models.OrderStatusProcess && len(req.Products) > 0 {
			if err := commitStock(tx, req.Products); err != nil {
				return err
			}
		}
		order.Status = newStatus
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	if err := preloadOrder(db).First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	broadcastOrderEvent("order.status", order)
	return &order, nil
}

// UploadPaymentProof stores the bank-transfer proof image and marks the order
// paid. This is a manual confirmation flow; the admin reviews the proof via
// the process/cancel actions. A second upload overwrites the proof URL.
func UploadPaymentProof(ctx context.Context, db *gorm.DB, images config.ImageService, userID, orderID uint, file io.Reader) (*models.Order, error) {
	var order models.Order
	err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Order not found.")
	}
	if err != nil {
		return nil, err
	}

	url, _, err := images.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	order.PaymentProof = url
	order.PaymentStatus = models.PaymentStatusPaid
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}

	if err := preloadOrder(db).First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAllOrders returns one admin page, newest first. An empty result set --
// including an out-of-range page -- is a 404, matching the shop frontend's
// expectations.
func GetAllOrders(db *gorm.DB, page, limit int) (*OrderPage, error) {
	return orderPage(db, nil, "No orders found.", page, limit)
}

// GetUserOrders returns one page of the caller's orders, newest first.
func GetUserOrders(db *gorm.DB, userID uint, page, limit int) (*OrderPage, error) {
	return orderPage(db, &userID, "No orders found for this user.", page, limit)
}

func orderPage(db *gorm.DB, userID *uint, emptyMsg string, page, limit int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := db.Model(&models.Order{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := preloadOrder(query).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, apperrors.New(apperrors.NotFound, emptyMsg)
	}

	return &OrderPage{
		Orders:      orders,
		TotalOrders: total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// -------- Handlers --------

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

func isImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpeg", ".jpg", ".png", ".gif", ".svg", ".webp":
		return true
	}
	return false
}

// POST /api/order/checkout
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		newOrder, err := CreateOrder(db, user.ID, &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order created successfully", "newOrder": newOrder})
	}
}

// GET /api/order/all?page=&limit=  (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		result, err := GetAllOrders(db, page, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"orders":      result.Orders,
			"totalOrders": result.TotalOrders,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
		})
	}
}

// GET /api/order/user-orders?page=&limit=
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		result, err := GetUserOrders(db, user.ID, page, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"userOrders":      result.Orders,
			"totalUserOrders": result.TotalOrders,
			"totalPages":      result.TotalPages,
			"currentPage":     result.CurrentPage,
		})
	}
}

// POST /api/order/upload-payment-proof  (multipart: orderId, paymentProof)
func UploadPaymentProofHandler(db *gorm.DB, images config.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		orderIDStr := c.PostForm("orderId")
		if orderIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order ID is required."})
			return
		}
		orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order ID is required."})
			return
		}

		fileHeader, err := c.FormFile("paymentProof")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment proof image is required."})
			return
		}
		if !isImageFilename(fileHeader.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error: Images Only!"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read payment proof"})
			return
		}
		defer file.Close()

		order, err := UploadPaymentProof(c.Request.Context(), db, images, user.ID, uint(orderID), file)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment proof uploaded successfully.", "order": order})
	}
}

// PUT /api/order/update-status/:orderId
// Any authenticated caller may drive the transition; ownership is not
// checked. TODO: scope non-admin callers to their own orders.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orderId is required"})
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		order, err := UpdateOrderStatus(db, uint(orderID), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully.", "order": order})
	}
}
