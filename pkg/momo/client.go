package momo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string
	RedirectURL string // หน้า redirect หลังจ่ายเสร็จ (callback)
	NotifyURL   string // IPN webhook
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		// gateway ช้า = ถือว่าล้ม ไม่บล็อก request ค้างไว้
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SessionResponse ผลจากการเปิด session ฝั่ง gateway
// ResultCode "0" = สำเร็จ, "-1" = ล้มเหลวฝั่งเรา, อื่น ๆ = gateway ปฏิเสธ
type SessionResponse struct {
	ResultCode string `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
	OrderID    string `json:"orderId"`
	RequestID  string `json:"requestId"`
	Amount     int64  `json:"amount"`
}

type gatewayResponse struct {
	ResultCode string `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

// CreateSession เปิด payment session กับ MoMo
// คืน ResultCode "-1" พร้อมข้อความเมื่อพัง ไม่คืน error — ผู้เรียกเอาไปบันทึกลง payment ได้เลย
func (c *Client) CreateSession(orderID uint, amount float64, orderInfo string) *SessionResponse {
	requestID := uuid.NewString()
	// ผูก timestamp กันชนกับ order id เดิมตอน retry
	momoOrderID := fmt.Sprintf("ORDER_%d_%d", orderID, time.Now().UnixMilli())
	amountMinor := int64(amount * 100) // MoMo รับหน่วยย่อย (cent)

	if orderInfo == "" {
		orderInfo = fmt.Sprintf("Payment for order %d", orderID)
	}

	fields := map[string]string{
		"partnerCode": c.cfg.PartnerCode,
		"partnerName": "Food Ordering System",
		"storeId":     "FoodOrderingStore",
		"accessKey":   c.cfg.AccessKey,
		"requestId":   requestID,
		"amount":      fmt.Sprintf("%d", amountMinor),
		"orderId":     momoOrderID,
		"orderInfo":   orderInfo,
		"redirectUrl": c.cfg.RedirectURL,
		"ipnUrl":      c.cfg.NotifyURL,
		"lang":        "vi",
		"extraData":   "",
		"requestType": "captureWallet",
		"autoCapture": "true",
	}
	fields["signature"] = Sign(RawSignature(fields), c.cfg.SecretKey)

	gw, err := c.post(fields)
	if err != nil {
		return &SessionResponse{
			ResultCode: "-1",
			Message:    "Payment creation failed: " + err.Error(),
			OrderID:    momoOrderID,
			RequestID:  requestID,
			Amount:     amountMinor,
		}
	}

	return &SessionResponse{
		ResultCode: gw.ResultCode,
		Message:    gw.Message,
		PayURL:     gw.PayURL,
		OrderID:    momoOrderID,
		RequestID:  requestID,
		Amount:     amountMinor,
	}
}

func (c *Client) post(fields map[string]string) (*gatewayResponse, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	res, err := c.client.Post(c.cfg.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var gw gatewayResponse
	if err := json.NewDecoder(res.Body).Decode(&gw); err != nil {
		return nil, err
	}
	return &gw, nil
}

// VerifyCallback เช็ค signature ของ callback/webhook ที่ gateway ยิงเข้ามา
// ต้องเรียกก่อน reconcile เสมอ — payload ที่ไม่มี signature ถือว่า verify ไม่ผ่าน
func (c *Client) VerifyCallback(fields map[string]string) bool {
	return Verify(RawSignature(fields), c.cfg.SecretKey, fields["signature"])
}
