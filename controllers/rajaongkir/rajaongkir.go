package rajaongkirControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultBaseURL = "https://api.rajaongkir.com/starter"

// Client proxies the RajaOngkir starter API. The API key never reaches the
// browser; the frontend only talks to this server.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient() *Client {
	base := os.Getenv("RAJAONGKIR_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		BaseURL:    base,
		APIKey:     os.Getenv("RAJAONGKIR_API_KEY"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope mirrors RajaOngkir's response wrapper. Results stay raw because
// their shape differs per endpoint and the frontend consumes them as-is.
type envelope struct {
	Rajaongkir struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results json.RawMessage `json:"results"`
	} `json:"rajaongkir"`
}

func (cl *Client) do(req *http.Request) (*envelope, error) {
	req.Header.Set("key", cl.APIKey)

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach RajaOngkir: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rajaongkir API error (%d): %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse RajaOngkir response: %w", err)
	}
	if env.Rajaongkir.Status.Code != 200 {
		return nil, fmt.Errorf("rajaongkir error: %s", env.Rajaongkir.Status.Description)
	}
	return &env, nil
}

// ShippingCost POSTs the form-encoded cost query.
func (cl *Client) ShippingCost(origin, destination, weight, courier string) (json.RawMessage, error) {
	form := url.Values{
		"origin":      {origin},
		"destination": {destination},
		"weight":      {weight},
		"courier":     {courier},
	}

	req, err := http.NewRequest(http.MethodPost, cl.BaseURL+"/cost", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	env, err := cl.do(req)
	if err != nil {
		return nil, err
	}
	return env.Rajaongkir.Results, nil
}

func (cl *Client) Provinces() (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodGet, cl.BaseURL+"/province", nil)
	if err != nil {
		return nil, err
	}
	env, err := cl.do(req)
	if err != nil {
		return nil, err
	}
	return env.Rajaongkir.Results, nil
}

func (cl *Client) Cities(provinceID string) (json.RawMessage, error) {
	endpoint := cl.BaseURL + "/city"
	if provinceID != "" {
		endpoint += "?province=" + url.QueryEscape(provinceID)
	}
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	env, err := cl.do(req)
	if err != nil {
		return nil, err
	}
	return env.Rajaongkir.Results, nil
}

type ShippingCostInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weight      string `json:"weight"`
	Courier     string `json:"courier"`
}

// POST /api/rajaongkir/get-shipping-cost
func GetShippingCostHandler(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingCostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if input.Origin == "" || input.Destination == "" || input.Weight == "" || input.Courier == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required parameters"})
			return
		}

		results, err := client.ShippingCost(input.Origin, input.Destination, input.Weight, input.Courier)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to get shipping cost"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"rajaongkir": gin.H{"results": results},
			"message":    "Shipping cost fetched successfully",
		})
	}
}

// GET /api/rajaongkir/provinces
func GetProvincesHandler(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := client.Provinces()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to get provinces"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "provinces": results})
	}
}

// GET /api/rajaongkir/cities?provinceId=
func GetCitiesHandler(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := client.Cities(c.Query("provinceId"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to get cities"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cities": results})
	}
}
