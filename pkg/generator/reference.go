package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/gemini-image-gen/pkg/domain"
)

// mimeTypesByExt は拡張子から送信用 MIME タイプへの対応表です。
// 未知の拡張子は image/png として扱います。
var mimeTypesByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// LoadReference はローカルファイルを参照画像として読み込みます。
// 読み込み失敗と空ファイルは ErrInvalidInput 扱いになります。
func LoadReference(path string) (*domain.ReferenceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: 参照画像を読み込めませんでした (%s): %v", ErrInvalidInput, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: 参照画像が空です (%s)", ErrInvalidInput, path)
	}

	return &domain.ReferenceImage{
		Data:     data,
		MIMEType: MIMETypeForPath(path),
	}, nil
}

// MIMETypeForPath はファイルパスの拡張子から MIME タイプを決定します。
func MIMETypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := mimeTypesByExt[ext]; ok {
		return mime
	}
	return "image/png"
}
