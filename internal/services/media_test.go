package services

import "testing"

func TestValidateMedia(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"imagem pequena", "image/jpeg", 1 << 20, false},
		{"imagem no limite", "image/png", MaxImageSize, false},
		{"imagem grande demais", "image/webp", MaxImageSize + 1, true},
		{"vídeo pequeno", "video/mp4", 50 << 20, false},
		{"vídeo grande demais", "video/mp4", MaxVideoSize + 1, true},
		{"tipo não suportado", "application/pdf", 100, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMedia(tc.contentType, tc.size)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateMedia(%q, %d) err = %v, wantErr = %v", tc.contentType, tc.size, err, tc.wantErr)
			}
		})
	}
}
