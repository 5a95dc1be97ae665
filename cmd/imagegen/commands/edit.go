package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-gen/pkg/generator"
	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

var editCmd = &cobra.Command{
	Use:   "edit <image> <instructions...>",
	Short: "既存画像に小規模な修正を加える",
	Long: `既存の画像を参照として送り、指定した箇所だけを修正した版を生成します。
指定以外の要素・画風・構図は維持するよう定型の指示文で包みます。

Examples:
  imagegen edit poster.png "fix the typo in the title"
  imagegen edit photo.jpg make the sky more dramatic`,
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

		instruction := prompt.EditInstruction(strings.Join(args[1:], " "))
		artifact, err := rt.generate(cmd.Context(), instruction, ref, resolvePrefix("edited"))
		if err != nil {
			return err
		}
		return reportResult(cmd.OutOrStdout(), artifact)
	},
}
