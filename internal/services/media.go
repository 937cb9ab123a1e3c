package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Limites de upload por tipo de mídia.
const (
	MaxImageSize = 10 << 20  // 10 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

// MediaService envia imagens e vídeos de produto para o MinIO e devolve
// URLs pré-assinadas de leitura.
type MediaService struct {
	client *minio.Client
	bucket string
}

func NewMediaService(client *minio.Client) *MediaService {
	return &MediaService{
		client: client,
		bucket: os.Getenv("MINIO_BUCKET"),
	}
}

// ValidateMedia confere tipo e tamanho antes do upload.
// Imagens aceitam qualquer image/* até 10 MB; vídeos qualquer video/* até 100 MB.
func ValidateMedia(contentType string, size int64) error {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		if size > MaxImageSize {
			return fmt.Errorf("imagem acima do limite de 10MB")
		}
	case strings.HasPrefix(contentType, "video/"):
		if size > MaxVideoSize {
			return fmt.Errorf("vídeo acima do limite de 100MB")
		}
	default:
		return fmt.Errorf("tipo de arquivo não suportado: %s", contentType)
	}
	return nil
}

// Upload valida e grava o arquivo no bucket, sob o prefixo dado
// (por exemplo "produtos"). Devolve a URL pré-assinada de 7 dias.
func (s *MediaService) Upload(ctx context.Context, header *multipart.FileHeader, prefix string) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if err := ValidateMedia(contentType, header.Size); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("erro na abertura do arquivo: %w", err)
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(header.Filename))

	_, err = s.client.PutObject(ctx, s.bucket, objectName, file, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro no upload para o MinIO: %w", err)
	}

	return s.PresignedURL(ctx, objectName)
}

// PresignedURL gera uma URL de leitura válida por 7 dias.
func (s *MediaService) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, 7*24*time.Hour, url.Values{})
	if err != nil {
		return "", fmt.Errorf("erro na geração da URL assinada: %w", err)
	}
	return u.String(), nil
}
