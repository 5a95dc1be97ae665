package prompt

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

// Library は名前付きスタイルブロックの集合です。
// 組み込みスタイルに加えて、YAML ファイルからユーザー定義スタイルを読み込めます。
type Library struct {
	styles map[string]string
}

// libraryFile は YAML スタイル定義ファイルの形式です。
type libraryFile struct {
	Styles map[string]string `yaml:"styles"`
}

// NewLibrary は組み込みスタイルだけを持つ Library を生成します。
func NewLibrary() *Library {
	return &Library{
		styles: lo.Assign(map[string]string{}, builtinStyles),
	}
}

// LoadFile は YAML ファイルのスタイル定義を取り込みます。
// 同名のスタイルはファイル側の定義で上書きされます。
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("スタイル定義ファイルの読み込みに失敗しました: %w", err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("スタイル定義ファイルの解析に失敗しました: %w", err)
	}

	for name, style := range file.Styles {
		if name == "" || style == "" {
			continue
		}
		l.styles[name] = style
	}
	return nil
}

// Get は名前に対応するスタイルブロックを返します。
func (l *Library) Get(name string) (string, bool) {
	style, ok := l.styles[name]
	return style, ok
}

// Names は登録済みスタイル名をソート済みで返します。
func (l *Library) Names() []string {
	names := lo.Keys(l.styles)
	sort.Strings(names)
	return names
}
