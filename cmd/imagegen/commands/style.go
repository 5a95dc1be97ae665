package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-gen/pkg/generator"
	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

var styleCmd = &cobra.Command{
	Use:   "style <reference> <prompt...>",
	Short: "参照画像の画風で新しい内容を生成する",
	Long: `参照画像をプロンプトと一緒に送り、同じ画風で新しい内容を生成します。
画風一致を強制する定型の指示文で内容プロンプトを包みます。

Examples:
  imagegen style reference.png a dragon flying over mountains`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		ref, err := generator.LoadReference(args[0])
		if err != nil {
			return err
		}

		instruction := prompt.StyleMatchInstruction(strings.Join(args[1:], " "))
		artifact, err := rt.generate(cmd.Context(), instruction, ref, resolvePrefix("styled"))
		if err != nil {
			return err
		}
		return reportResult(cmd.OutOrStdout(), artifact)
	},
}
