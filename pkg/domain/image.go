package domain

import "time"

// Modality はレスポンスとして要求する出力種別です。
type Modality string

const (
	ModalityImage Modality = "IMAGE"
	ModalityText  Modality = "TEXT"
)

// ReferenceImage はプロンプトに添付する参照画像です。
// Data は読み込み済みのバイト列、MIMEType は送信時に使う種別を保持します。
type ReferenceImage struct {
	Data     []byte
	MIMEType string
}

// GenerationRequest は単一の画像生成要求です。
// 呼び出しごとに新しく構築される不変の値として扱います。
type GenerationRequest struct {
	Instruction string
	Reference   *ReferenceImage // nil ならテキストのみ
	Modalities  []Modality
}

// HasReference は参照画像が添付されているかを返します。
func (r GenerationRequest) HasReference() bool {
	return r.Reference != nil && len(r.Reference.Data) > 0
}

// SavedArtifact は保存された生成画像の記録です。
type SavedArtifact struct {
	Path      string
	CreatedAt time.Time
}
