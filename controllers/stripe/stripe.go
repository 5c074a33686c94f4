package stripe

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// PaymentIntentResponse represents the fields we consume from Stripe
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getStripeConfig reads the API credentials; the endpoint can be overridden
// for sandboxes
func getStripeConfig() (secretKey, apiURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = "https://api.stripe.com/v1"
	}
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, apiURL, nil
}

// CreatePaymentIntent asks Stripe for a payment intent over the given amount
// (in minor units) and returns the client secret the frontend confirms the
// card payment with.
func CreatePaymentIntent(amount int64, currency, orderRef string) (clientSecret, intentID string, err error) {
	secretKey, apiURL, err := getStripeConfig()
	if err != nil {
		return "", "", err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("metadata[order_ref]", orderRef)

	req, err := http.NewRequest("POST", apiURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to reach Stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var intent PaymentIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", "", fmt.Errorf("failed to parse Stripe response: %v", err)
	}

	if intent.Error != nil {
		return "", "", fmt.Errorf("stripe error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return "", "", fmt.Errorf("stripe returned empty client secret")
	}

	return intent.ClientSecret, intent.ID, nil
}
