package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-image-gen/pkg/domain"
	"google.golang.org/genai"
)

// GenerativeModel は画像生成リクエストを実行するリモートサービスの窓口です。
// 呼び出しは単発・非ストリーミングで、呼び出し間に状態を持ちません。
type GenerativeModel interface {
	Generate(ctx context.Context, model string, req domain.GenerationRequest) (*genai.GenerateContentResponse, error)
}

// Client は Gemini API を呼び出す GenerativeModel の実装です。
// プロセス全体の共有シングルトンは持たず、必ず NewClient で明示的に構築します。
type Client struct {
	raw *genai.Client
}

// NewClient は API キーを受け取って Client を初期化します。
// キーが空の場合は通信を一切行わずにエラーを返します。
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: APIキーが設定されていません", ErrInvalidInput)
	}

	raw, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &Client{raw: raw}, nil
}

// Generate はリクエストを送信してレスポンスをそのまま返します。
// 通信・認証・クォータのエラーは分類せず呼び出し元に伝播させます。
func (c *Client) Generate(ctx context.Context, model string, req domain.GenerationRequest) (*genai.GenerateContentResponse, error) {
	slog.InfoContext(ctx, "画像生成リクエストを送信します",
		"model", model, "has_reference", req.HasReference())

	contents := []*genai.Content{{
		Role:  "user",
		Parts: BuildParts(req),
	}}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: modalityStrings(req.Modalities),
	}

	return c.raw.Models.GenerateContent(ctx, model, contents, cfg)
}

// BuildParts はリクエストを genai のパーツ列へ変換します。
// 指示文が先頭、参照画像があれば2番目のパーツになります。
func BuildParts(req domain.GenerationRequest) []*genai.Part {
	parts := []*genai.Part{genai.NewPartFromText(req.Instruction)}
	if req.HasReference() {
		parts = append(parts, genai.NewPartFromBytes(req.Reference.Data, req.Reference.MIMEType))
	}
	return parts
}

func modalityStrings(modalities []domain.Modality) []string {
	out := make([]string, 0, len(modalities))
	for _, m := range modalities {
		out = append(out, string(m))
	}
	return out
}
