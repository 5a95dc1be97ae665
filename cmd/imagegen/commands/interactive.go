package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-image-gen/pkg/domain"
)

// interactiveLoop はプロンプトを受け付け続ける対話モードです。
// 'model' でモデル切替、'quit' で正常終了します。
// リクエスト単位のエラーはここで捕捉してログに残し、ループは継続します。
// リトライやバックオフは行わず、利用者の再入力に任せます。
func (rt *runtime) interactiveLoop(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "Gemini Image Generator")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	printModelMenu(out)
	fmt.Fprintln(out, "\n'quit' で終了します")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nプロンプトを入力 ('model' でモデル切替): ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "model":
			rt.switchModel(scanner, out)
			continue
		}

		instruction, err := rt.applyStyleFlag(input)
		if err != nil {
			slog.Error("スタイル適用に失敗しました", "error", err)
			continue
		}

		artifact, err := rt.generate(ctx, instruction, nil, resolvePrefix(defaultPrefix))
		if err != nil {
			// 通信・認証・クォータ・保存のいずれの失敗もこの1回分だけを諦める
			slog.Error("生成に失敗しました。別のプロンプトで再試行してください", "error", err)
			continue
		}

		_ = reportResult(out, artifact)
	}
}

// switchModel は番号入力でモデルを切り替えます。不正な入力は既定モデル扱いです。
func (rt *runtime) switchModel(scanner *bufio.Scanner, out io.Writer) {
	printModelMenu(out)
	fmt.Fprint(out, "番号を入力: ")
	if !scanner.Scan() {
		return
	}

	models := domain.Models()
	switch strings.TrimSpace(scanner.Text()) {
	case "2":
		rt.model = models[1]
	case "3":
		rt.model = models[2]
	default:
		rt.model = models[0]
	}
	fmt.Fprintf(out, "モデルを切り替えました: %s\n", rt.model)
}

func printModelMenu(out io.Writer) {
	fmt.Fprintln(out, "\n利用可能なモデル:")
	for i, model := range domain.Models() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, model)
	}
}
