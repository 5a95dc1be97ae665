package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shouni/gemini-image-gen/pkg/config"
	"github.com/shouni/gemini-image-gen/pkg/domain"
	"github.com/shouni/gemini-image-gen/pkg/extractor"
	"github.com/shouni/gemini-image-gen/pkg/generator"
	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

// defaultPrefix は通常生成時のファイル名接頭辞です。
const defaultPrefix = "generated"

// runtime は1回のコマンド実行に必要な依存関係の束です。
// プロセス全体で共有するシングルトンは持ちません。
type runtime struct {
	client    generator.GenerativeModel
	styles    *prompt.Library
	outputDir string
	model     string
}

// newRuntime は環境設定を読み込み、依存関係を明示的に構築します。
// APIキーの欠落はここで致命エラーになります。
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := generator.NewClient(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	styles := prompt.NewLibrary()
	stylesFile := cfg.StylesFile
	if flagStylesFile != "" {
		stylesFile = flagStylesFile
	}
	if stylesFile != "" {
		if err := styles.LoadFile(stylesFile); err != nil {
			return nil, err
		}
	}

	outputDir := cfg.OutputDir
	if flagOutputDir != "" {
		outputDir = flagOutputDir
	}

	model := cfg.Model
	if flagModel != "" {
		if !domain.IsKnownModel(flagModel) {
			return nil, fmt.Errorf("未知のモデルです: %s (選択肢: %v)", flagModel, domain.Models())
		}
		model = flagModel
	}

	return &runtime{
		client:    client,
		styles:    styles,
		outputDir: outputDir,
		model:     model,
	}, nil
}

// generate はリクエスト構築 → リモート呼び出し → 抽出保存の一連を実行します。
// 画像なしの応答は nil, nil で返ります。
func (rt *runtime) generate(ctx context.Context, instruction string, ref *domain.ReferenceImage, prefix string) (*domain.SavedArtifact, error) {
	req, err := generator.BuildRequest(instruction, ref)
	if err != nil {
		return nil, err
	}

	resp, err := rt.client.Generate(ctx, rt.model, req)
	if err != nil {
		return nil, err
	}

	return extractor.New(rt.outputDir, prefix).Extract(ctx, resp)
}

// applyStyleFlag は --style 指定があれば指示文にスタイルブロックを前置します。
func (rt *runtime) applyStyleFlag(instruction string) (string, error) {
	if flagStyle == "" {
		return instruction, nil
	}
	style, ok := rt.styles.Get(flagStyle)
	if !ok {
		return "", fmt.Errorf("未知のスタイルです: %s (選択肢: %v)", flagStyle, rt.styles.Names())
	}
	return prompt.ApplyStyle(instruction, style), nil
}

// oneShot は引数プロンプトによる一度きりの生成です。
func (rt *runtime) oneShot(ctx context.Context, out io.Writer, instruction string) error {
	instruction, err := rt.applyStyleFlag(instruction)
	if err != nil {
		return err
	}

	artifact, err := rt.generate(ctx, instruction, nil, resolvePrefix(defaultPrefix))
	if err != nil {
		return err
	}
	return reportResult(out, artifact)
}

// reportResult は生成結果（保存先または画像なし）を利用者へ伝えます。
func reportResult(out io.Writer, artifact *domain.SavedArtifact) error {
	if artifact == nil {
		fmt.Fprintln(out, "画像は生成されませんでした。別のプロンプトを試してください。")
		return nil
	}
	fmt.Fprintf(out, "保存先: %s\n", artifact.Path)
	return nil
}

// resolvePrefix は --prefix 指定があればそれを、なければコマンド既定値を使います。
func resolvePrefix(fallback string) string {
	if strings.TrimSpace(flagPrefix) != "" {
		return flagPrefix
	}
	return fallback
}
