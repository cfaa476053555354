package momo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ลำดับ field ตรงนี้เป็นส่วนหนึ่งของ wire contract กับ MoMo
// ห้ามเรียงใหม่ ห้าม sort — gateway เช็ค byte ต่อ byte
var signedFields = []string{
	"accessKey",
	"amount",
	"extraData",
	"ipnUrl",
	"orderId",
	"orderInfo",
	"partnerCode",
	"redirectUrl",
	"requestId",
	"requestType",
}

// RawSignature ประกอบ string สำหรับเซ็นจาก field ที่กำหนด
// field ที่ไม่อยู่ในลำดับ (เช่น signature เอง) จะถูกข้าม
func RawSignature(fields map[string]string) string {
	var b strings.Builder
	for i, name := range signedFields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(fields[name])
	}
	return b.String()
}

// Sign คืน HMAC-SHA256 เป็น hex ตัวเล็ก
func Sign(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify เทียบ signature ที่ส่งมากับที่คำนวณเอง ผิดยังไงก็คืน false ไม่ panic
func Verify(message, secret, signature string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(message, secret)), []byte(signature))
}
