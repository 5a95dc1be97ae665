package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/gemini-image-gen/pkg/domain"
)

// ErrInvalidInput はリクエスト構築時の入力不備を表します。
var ErrInvalidInput = errors.New("invalid input")

// BuildRequest は指示文と任意の参照画像から GenerationRequest を構築します。
// 画像と併せて返る補足テキストも取りこぼさないよう、
// レスポンスモダリティは常に IMAGE と TEXT の両方を要求します。
// 副作用はなく、純粋な構築のみを行います。
func BuildRequest(instruction string, ref *domain.ReferenceImage) (domain.GenerationRequest, error) {
	if strings.TrimSpace(instruction) == "" {
		return domain.GenerationRequest{}, fmt.Errorf("%w: 指示文が空です", ErrInvalidInput)
	}
	if ref != nil && len(ref.Data) == 0 {
		return domain.GenerationRequest{}, fmt.Errorf("%w: 参照画像が空です", ErrInvalidInput)
	}

	return domain.GenerationRequest{
		Instruction: instruction,
		Reference:   ref,
		Modalities:  []domain.Modality{domain.ModalityImage, domain.ModalityText},
	}, nil
}
