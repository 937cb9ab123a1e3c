package utils

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// GeneratePostingQRCode gera o PNG do QR code de um código de postagem,
// para impressão na etiqueta do pacote.
func GeneratePostingQRCode(code string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("erro na geração do QR code: %w", err)
	}
	return png, nil
}
