package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
)

// EncodeToPNG は画像データ（PNG, GIF, JPEG等）をデコードし直して PNG 形式で返します。
// モデルから返る InlineData の保存形式を PNG に揃えるために使います。
// image.Decode がサポートしないデータはエラーになります。
func EncodeToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressToJPEG は画像データをJPEG形式に圧縮します。
// 参照画像を API へ送る前のペイロード削減に使います。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
