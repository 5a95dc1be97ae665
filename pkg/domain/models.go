package domain

// 利用可能なモデル識別子。CLI の model コマンドで切り替えます。
const (
	ModelFlashImage = "gemini-2.5-flash-image"     // Nano Banana
	ModelProImage   = "gemini-3-pro-image-preview" // Nano Banana Pro
	ModelImagen     = "imagen-4.0-generate-001"    // Imagen 4
)

// DefaultModel は明示指定がない場合に使うモデルです。
const DefaultModel = ModelFlashImage

// Models は選択可能なモデルの一覧を列挙順に返します。
func Models() []string {
	return []string{ModelFlashImage, ModelProImage, ModelImagen}
}

// IsKnownModel は識別子が列挙に含まれるかを返します。
func IsKnownModel(model string) bool {
	for _, m := range Models() {
		if m == model {
			return true
		}
	}
	return false
}
