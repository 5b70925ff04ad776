package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"tienda/src/order/domain/entity"
)

// OrderEventPayload representa el cuerpo enviado al servicio de notificaciones
type OrderEventPayload struct {
	Event      string          `json:"event"`
	OrderID    string          `json:"order_id"`
	OrderCode  string          `json:"order_code"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
}

// NotificationClient cliente HTTP para el servicio externo de notificaciones.
// Todas las notificaciones son fire-and-forget: se despachan en una goroutine
// y el resultado solo se registra en el log, nunca afecta el flujo principal
type NotificationClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewNotificationClient crea una nueva instancia del cliente.
// Si NOTIFICATION_SERVICE_URL no está configurada las notificaciones
// se omiten silenciosamente
func NewNotificationClient() *NotificationClient {
	return &NotificationClient{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: os.Getenv("NOTIFICATION_SERVICE_URL"),
	}
}

// OrderCreated notifica la creación de una orden
func (c *NotificationClient) OrderCreated(order *entity.Order) {
	c.dispatch("order.created", order)
}

// PaymentConfirmed notifica la confirmación de pago
func (c *NotificationClient) PaymentConfirmed(order *entity.Order) {
	c.dispatch("order.payment_confirmed", order)
}

// ShipmentConfirmed notifica la confirmación de envío
func (c *NotificationClient) ShipmentConfirmed(order *entity.Order) {
	c.dispatch("order.shipment_confirmed", order)
}

// OrderCanceled notifica la cancelación
func (c *NotificationClient) OrderCanceled(order *entity.Order) {
	c.dispatch("order.canceled", order)
}

// dispatch envía el evento en background
func (c *NotificationClient) dispatch(event string, order *entity.Order) {
	if c.baseURL == "" {
		return
	}

	payload := OrderEventPayload{
		Event:      event,
		OrderID:    order.OrderID,
		OrderCode:  order.OrderCode,
		CustomerID: order.CustomerID,
		Total:      order.Total,
	}

	go func() {
		if err := c.post(payload); err != nil {
			log.Printf("WARNING: Failed to notify %s for order %s: %v", event, payload.OrderID, err)
		}
	}()
}

// post ejecuta el POST contra el servicio de notificaciones
func (c *NotificationClient) post(payload OrderEventPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling notification: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/notifications", c.baseURL)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling notification-service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("notification-service returned status %d", resp.StatusCode)
	}

	return nil
}
