package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags
	flagOutputDir  string
	flagPrefix     string
	flagModel      string
	flagStyle      string
	flagStylesFile string
)

var rootCmd = &cobra.Command{
	Use:   "imagegen [prompt...]",
	Short: "Gemini API を使った画像生成CLI",
	Long: `imagegen - Gemini API でテキストプロンプトから画像を生成するCLIです。

引数なしで起動すると対話モードに入ります。プロンプトを入力するたびに
1枚生成し、'model' でモデルを切り替え、'quit' で終了します。
引数を渡すとそれらを連結した一度きりのプロンプトとして実行します。

設定は環境変数（または .env ファイル）から読み込みます:
  GEMINI_API_KEY        必須。欠落時はネットワーク呼び出し前に終了します
  IMAGEGEN_OUTPUT_DIR   保存先ディレクトリ (既定: output)
  IMAGEGEN_MODEL        既定モデル
  IMAGEGEN_STYLES_FILE  追加スタイル定義のYAMLファイル

Examples:
  # 対話モード
  imagegen

  # 一度きりの生成
  imagegen a red circle on white background

  # スタイルブロックを前置して生成
  imagegen --style watercolor a cat sleeping on a windowsill

  # 既存画像の一部修正
  imagegen edit photo.png "make the hat blue"`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) > 0 {
			return rt.oneShot(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "))
		}
		return rt.interactiveLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "out", "", "保存先ディレクトリ (既定は環境設定)")
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "保存ファイル名の接頭辞")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "使用するモデル識別子")
	rootCmd.PersistentFlags().StringVar(&flagStyle, "style", "", "前置するスタイルブロック名")
	rootCmd.PersistentFlags().StringVar(&flagStylesFile, "styles-file", "", "追加スタイル定義のYAMLファイル")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(variationCmd)
	rootCmd.AddCommand(stylesCmd)
}
