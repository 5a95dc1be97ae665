package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-gen/pkg/prompt"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "利用可能なスタイルブロックを一覧する",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 一覧表示は API キー不要。ここではクライアントを構築しない。
		lib := prompt.NewLibrary()
		if flagStylesFile != "" {
			if err := lib.LoadFile(flagStylesFile); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for _, name := range lib.Names() {
			style, _ := lib.Get(name)
			firstLine, _, _ := strings.Cut(strings.TrimSpace(style), "\n")
			fmt.Fprintf(out, "%-24s %s\n", name, firstLine)
		}
		return nil
	},
}
