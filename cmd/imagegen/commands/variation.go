package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-gen/pkg/generator"
	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

var variationCmd = &cobra.Command{
	Use:   "variation <reference> [instructions...]",
	Short: "参照画像に近いバリエーションを生成する",
	Long: `参照画像の画風・構図・配色を保ったまま、指定したバリエーションを加えた
新しい画像を生成します。指示を省略すると軽微な変化のみを要求します。

Examples:
  imagegen variation hero.png
  imagegen variation hero.png change the season to winter`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		ref, err := generator.LoadReference(args[0])
		if err != nil {
			return err
		}

		instruction := prompt.VariationInstruction(strings.Join(args[1:], " "))
		artifact, err := rt.generate(cmd.Context(), instruction, ref, resolvePrefix("variation"))
		if err != nil {
			return err
		}
		return reportResult(cmd.OutOrStdout(), artifact)
	},
}
