package illustration

import (
	"encoding/base64"
	"net/http"
	"strings"

	"carbon-story-api/internal/domain/entity"
	apperrors "carbon-story-api/pkg/errors"
)

// DataURIPrefix 输出图片的 data URI 前缀
const DataURIPrefix = "data:image/png;base64,"

// DataURI 将图片字节编码为可直接嵌入的 PNG data URI
func DataURI(data []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeReference 解码参考图，data 可以是纯 base64 或完整的 data URI
func DecodeReference(ref *entity.ReferenceImage) (*entity.ImageBytes, error) {
	if ref == nil || strings.TrimSpace(ref.Data) == "" {
		return nil, nil
	}

	payload := strings.TrimSpace(ref.Data)
	mimeType := strings.TrimSpace(ref.MimeType)
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, apperrors.New(apperrors.CodeInvalidReferenceImage, "baseImage must be base64 encoded")
		}
		if mimeType == "" {
			mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		}
		payload = body
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidReferenceImage, "baseImage is not valid base64")
	}
	if len(data) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidReferenceImage, "baseImage is empty")
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, apperrors.New(apperrors.CodeInvalidReferenceImage, "baseImage is not an image").
			WithDetail(mimeType)
	}
	return &entity.ImageBytes{Data: data, MimeType: mimeType}, nil
}

func decodeBase64(s string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
