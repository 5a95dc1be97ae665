package prompt

// 組み込みのスタイルブロック。内容は不透明なテキストとして扱い、
// 解析や検証はせず連結のみを行います。

// StyleStorybookWorksheet は手描き絵本・学習プリント風のスタイルです。
const StyleStorybookWorksheet = `Hand-drawn storybook worksheet illustration style. Cute comic book aesthetic
with soft watercolor-like colors and slightly whimsical hand-drawn look.
Warm, inviting illustration like a children's travel book or comic.
Cute but not childish - appropriate for high school students.
Educational worksheet feel with clean readable elements.`

// StyleEducationalInfographic は教育用インフォグラフィック風のスタイルです。
const StyleEducationalInfographic = `Clean, modern educational infographic style. Professional classroom poster
aesthetic with organized sections. Soft pastel colors for visual organization.
Clear readable fonts with proper visual hierarchy. Small cute icons accompany
text elements. Suitable for educational materials and classroom use.`

// StyleKawaiiCute はかわいい日本風イラストのスタイルです。
const StyleKawaiiCute = `Kawaii cute Japanese illustration style. Rounded shapes, big expressive eyes,
soft pastel colors. Cheerful and adorable aesthetic. Simple clean lines with
minimal detail. Friendly and approachable character designs.`

// StyleMinimalistLine はミニマルな線画スタイルです。
const StyleMinimalistLine = `Minimalist line art illustration style. Clean single-weight black lines on
white or light background. Simple geometric shapes. Elegant and modern.
Minimal color accents if any. Focus on essential forms only.`

// StyleVintageTravel はヴィンテージ旅行ポスター風のスタイルです。
const StyleVintageTravel = `Vintage travel poster illustration style from the 1920s-1950s. Bold flat
colors, simplified shapes, art deco influences. Dramatic compositions with
strong silhouettes. Nostalgic and romantic aesthetic. Bold typography
integration.`

// StyleWatercolorSoft は柔らかい水彩画スタイルです。
const StyleWatercolorSoft = `Soft watercolor painting style. Transparent washes of color, visible paper
texture, organic bleeding edges where colors meet. Delicate and airy feel.
Light pastel palette. Hand-painted aesthetic with natural imperfections.`

// builtinStyles は名前からスタイルブロックへの対応表です。
var builtinStyles = map[string]string{
	"storybook-worksheet":     StyleStorybookWorksheet,
	"educational-infographic": StyleEducationalInfographic,
	"kawaii":                  StyleKawaiiCute,
	"minimalist-line":         StyleMinimalistLine,
	"vintage-travel":          StyleVintageTravel,
	"watercolor":              StyleWatercolorSoft,
}
