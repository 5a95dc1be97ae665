package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shouni/gemini-image-gen/pkg/domain"
	"github.com/shouni/gemini-image-gen/pkg/imgutil"
	"google.golang.org/genai"
)

// ErrDecode は InlineData が有効な画像ペイロードではないことを表します。
var ErrDecode = errors.New("decode error")

// timestampLayout はファイル名用のタイムスタンプ形式です。
// 秒精度のため、同一プレフィックス・同一秒の保存は同名ファイルを上書きします。
// 呼び出し側は秒未満の一意性に依存してはいけません。
const timestampLayout = "20060102_150405"

// Extractor はモデルのレスポンスから画像パーツを取り出して
// 出力ディレクトリへ PNG として保存するコンポーネントです。
type Extractor struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// New は保存先と接頭辞を指定して Extractor を初期化します。
func New(outputDir, prefix string) *Extractor {
	return &Extractor{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Extract はレスポンスのパーツ列を一度だけ走査し、画像パーツを保存します。
// テキストパーツはモデルからのコメントとしてログに出すだけで、ディスクには書きません。
// 画像パーツが複数ある場合はすべて保存した上で、最後に書いた1件を返します。
// 画像パーツが1つもない場合は nil, nil を返します。これはエラーではなく
// 「モデルが画像を生成しなかった」という正当な空の結果です。
func (e *Extractor) Extract(ctx context.Context, resp *genai.GenerateContentResponse) (*domain.SavedArtifact, error) {
	artifacts, err := e.ExtractAll(ctx, resp)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, nil
	}
	last := artifacts[len(artifacts)-1]
	return &last, nil
}

// ExtractAll は保存したすべての成果物を到着順で返します。
func (e *Extractor) ExtractAll(ctx context.Context, resp *genai.GenerateContentResponse) ([]domain.SavedArtifact, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}

	candidate := resp.Candidates[0]

	var artifacts []domain.SavedArtifact
	for _, part := range candidate.Content.Parts {
		switch {
		case part.Text != "":
			slog.InfoContext(ctx, "モデルからのコメント", "text", part.Text)
		case part.InlineData != nil && len(part.InlineData.Data) > 0:
			artifact, err := e.save(part.InlineData.Data)
			if err != nil {
				return artifacts, err
			}
			artifacts = append(artifacts, artifact)
		}
	}

	// 安全フィルター等によるブロックの確認
	if len(artifacts) == 0 &&
		candidate.FinishReason != genai.FinishReasonUnspecified &&
		candidate.FinishReason != genai.FinishReasonStop {
		slog.WarnContext(ctx, "画像生成が異常終了しました", "finish_reason", candidate.FinishReason)
	}

	return artifacts, nil
}

func (e *Extractor) save(data []byte) (domain.SavedArtifact, error) {
	pngData, err := imgutil.EncodeToPNG(data)
	if err != nil {
		return domain.SavedArtifact{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return domain.SavedArtifact{}, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	createdAt := e.now()
	filename := fmt.Sprintf("%s_%s.png", e.prefix, createdAt.Format(timestampLayout))
	path := filepath.Join(e.outputDir, filename)

	if err := os.WriteFile(path, pngData, 0o644); err != nil {
		return domain.SavedArtifact{}, fmt.Errorf("画像ファイルの書き込みに失敗しました: %w", err)
	}

	slog.Info("画像を保存しました", "path", path)
	return domain.SavedArtifact{Path: path, CreatedAt: createdAt}, nil
}
