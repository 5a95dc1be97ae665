package commands

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/gemini-image-gen/pkg/domain"
	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

// stubModel は generator.GenerativeModel のテスト用スタブなのだ。
type stubModel struct {
	resp      *genai.GenerateContentResponse
	err       error
	calls     int
	lastModel string
}

func (s *stubModel) Generate(ctx context.Context, model string, req domain.GenerationRequest) (*genai.GenerateContentResponse, error) {
	s.calls++
	s.lastModel = model
	return s.resp, s.err
}

func imageResponse(t *testing.T) *genai.GenerateContentResponse {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				genai.NewPartFromText("Here is your image"),
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: buf.Bytes()}},
			}},
		}},
	}
}

func newTestRuntime(t *testing.T, model *stubModel) *runtime {
	t.Helper()
	return &runtime{
		client:    model,
		styles:    prompt.NewLibrary(),
		outputDir: t.TempDir(),
		model:     domain.DefaultModel,
	}
}

func TestInteractiveLoop(t *testing.T) {
	ctx := context.Background()

	t.Run("quit でエラーなく終了するのだ", func(t *testing.T) {
		model := &stubModel{}
		rt := newTestRuntime(t, model)
		out := new(bytes.Buffer)

		err := rt.interactiveLoop(ctx, strings.NewReader("quit\n"), out)

		require.NoError(t, err)
		assert.Zero(t, model.calls, "quit では生成が走らないはずなのだ")
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("入力の終端でもエラーなく終了するのだ", func(t *testing.T) {
		rt := newTestRuntime(t, &stubModel{})

		err := rt.interactiveLoop(ctx, strings.NewReader(""), new(bytes.Buffer))
		require.NoError(t, err)
	})

	t.Run("プロンプト入力で1枚生成して保存先を表示するのだ", func(t *testing.T) {
		model := &stubModel{resp: imageResponse(t)}
		rt := newTestRuntime(t, model)
		out := new(bytes.Buffer)

		err := rt.interactiveLoop(ctx, strings.NewReader("a red circle on white background\nquit\n"), out)

		require.NoError(t, err)
		assert.Equal(t, 1, model.calls)
		assert.Contains(t, out.String(), "保存先: ")

		entries, err := os.ReadDir(rt.outputDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("model コマンドでモデルを切り替えて次の生成に反映するのだ", func(t *testing.T) {
		model := &stubModel{resp: imageResponse(t)}
		rt := newTestRuntime(t, model)

		input := "model\n2\na cat\nquit\n"
		err := rt.interactiveLoop(ctx, strings.NewReader(input), new(bytes.Buffer))

		require.NoError(t, err)
		assert.Equal(t, domain.ModelProImage, rt.model)
		assert.Equal(t, domain.ModelProImage, model.lastModel)
	})

	t.Run("生成エラーでもループは継続するのだ", func(t *testing.T) {
		model := &stubModel{err: errors.New("quota exceeded")}
		rt := newTestRuntime(t, model)
		out := new(bytes.Buffer)

		input := "first prompt\nsecond prompt\nquit\n"
		err := rt.interactiveLoop(ctx, strings.NewReader(input), out)

		require.NoError(t, err, "リクエスト単位の失敗はループを壊さないのだ")
		assert.Equal(t, 2, model.calls)
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("画像なしの応答は失敗ではなくメッセージになるのだ", func(t *testing.T) {
		model := &stubModel{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					genai.NewPartFromText("no image this time"),
				}},
			}},
		}}
		rt := newTestRuntime(t, model)
		out := new(bytes.Buffer)

		err := rt.interactiveLoop(ctx, strings.NewReader("a prompt\nquit\n"), out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "画像は生成されませんでした")
	})

	t.Run("空行は無視されるのだ", func(t *testing.T) {
		model := &stubModel{}
		rt := newTestRuntime(t, model)

		err := rt.interactiveLoop(ctx, strings.NewReader("\n   \nquit\n"), new(bytes.Buffer))
		require.NoError(t, err)
		assert.Zero(t, model.calls)
	})
}

func TestResolvePrefix(t *testing.T) {
	t.Run("フラグ未指定ならコマンド既定値を使うのだ", func(t *testing.T) {
		old := flagPrefix
		flagPrefix = ""
		t.Cleanup(func() { flagPrefix = old })

		assert.Equal(t, "edited", resolvePrefix("edited"))
	})

	t.Run("フラグ指定があればそれを優先するのだ", func(t *testing.T) {
		old := flagPrefix
		flagPrefix = "custom"
		t.Cleanup(func() { flagPrefix = old })

		assert.Equal(t, "custom", resolvePrefix("edited"))
	})
}
