package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shouni/gemini-image-gen/pkg/domain"
	"github.com/shouni/gemini-image-gen/pkg/imgutil"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	// UseImageCompression は参照画像を送信前に JPEG 圧縮するかを制御します。
	UseImageCompression = true
	// ImageCompressionQuality は圧縮時の JPEG 品質です。
	ImageCompressionQuality = 75
)

// ReferenceFetcher はリモート上の参照画像を取得するコンポーネントです。
// http/https は httpkit、gs:// は remoteio を使って読み込みます。
type ReferenceFetcher struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
}

// NewReferenceFetcher は依存関係を注入して ReferenceFetcher を初期化します。
func NewReferenceFetcher(httpClient httpkit.ClientInterface, reader remoteio.InputReader) (*ReferenceFetcher, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	return &ReferenceFetcher{httpClient: httpClient, reader: reader}, nil
}

// Fetch は URL から参照画像を取得して ReferenceImage に変換します。
// 画像以外のデータが返った場合は ErrInvalidInput になります。
func (f *ReferenceFetcher) Fetch(ctx context.Context, rawURL string) (*domain.ReferenceImage, error) {
	data, err := f.fetchBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: 参照画像が空です (%s)", ErrInvalidInput, rawURL)
	}

	finalData := data
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: 画像ではないデータが返されました (%s)", ErrInvalidInput, mimeType)
	}

	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
			mimeType = "image/jpeg"
		}
	}

	return &domain.ReferenceImage{Data: finalData, MIMEType: mimeType}, nil
}

func (f *ReferenceFetcher) fetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := f.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return f.httpClient.FetchBytes(ctx, rawURL)
}

// IsRemoteReference は参照指定がリモート URL かどうかを判定します。
func IsRemoteReference(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "gs://")
}
