package prompt

import (
	"fmt"
	"strings"
)

// ApplyStyle はスタイルブロックを内容プロンプトの前に連結します。
// どちらも不透明な UTF-8 テキストとして扱い、内容の加工は行いません。
func ApplyStyle(content, style string) string {
	return fmt.Sprintf("%s\n\nCONTENT:\n%s", strings.TrimSpace(style), strings.TrimSpace(content))
}

// StyleMatchInstruction は参照画像の画風を厳密に維持させる指示文を組み立てます。
// 新しく生成する内容を contentPrompt として受け取ります。
func StyleMatchInstruction(contentPrompt string) string {
	return fmt.Sprintf(`Look at this reference image carefully. I want you to generate a NEW image
that matches the EXACT same artistic style, including:
- Same drawing/illustration style
- Same color palette and saturation
- Same line weights and detail level
- Same overall aesthetic and mood

Generate this new content IN THAT EXACT STYLE:
%s

IMPORTANT: The output should look like it was drawn by the same artist.
Maintain perfect style consistency with the reference.`, strings.TrimSpace(contentPrompt))
}

// EditInstruction は既存画像への小規模な修正指示を定型文で包みます。
// 指示以外の要素を変えないことをモデルに強制するための決まり文句です。
func EditInstruction(editRequest string) string {
	return fmt.Sprintf(`Look at this image carefully. I want you to create a MODIFIED version with
these specific changes:

%s

CRITICAL REQUIREMENTS:
1. Keep EVERYTHING ELSE exactly the same as the original
2. Maintain the exact same artistic style, colors, and aesthetic
3. Only change what was specifically requested
4. The edited image should look like a minor revision, not a completely new image
5. Preserve all other elements, layout, and composition

Generate the edited version now.`, strings.TrimSpace(editRequest))
}

// VariationInstruction は参照画像に近いバリエーション生成の指示文を組み立てます。
func VariationInstruction(variationRequest string) string {
	if strings.TrimSpace(variationRequest) == "" {
		variationRequest = "Create a slight variation"
	}
	return fmt.Sprintf(`Study this image carefully - its style, composition, colors, and content.

Now generate a NEW image that is very similar but with this variation:
%s

Requirements:
- Keep the same artistic style exactly
- Keep the same color palette
- Keep the same general composition and layout
- Keep the same mood and aesthetic
- Make only the requested variation

The result should be recognizably similar to the original.`, strings.TrimSpace(variationRequest))
}
