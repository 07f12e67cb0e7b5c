package batch

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// LoadInput json形式の入力ファイルを読み込む
// {"p": 29, "ints": [5, 2, 0]}
func LoadInput(name string) (Input, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Input{}, errors.Errorf("failed to read file: %w", err)
	}

	var in Input
	if err := json.Unmarshal(b, &in); err != nil {
		return Input{}, errors.Errorf("failed to json unmarshal: %w", err)
	}
	return in, nil
}

// SaveReport 結果をjson形式にしてファイル出力
// - ファイルが存在する場合は内容を全て上書きする
// - 親ディレクトリは作成しない
func SaveReport(name string, r *Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Errorf("failed to json marshal: %w", err)
	}

	if err := os.WriteFile(name, b, 0o644); err != nil {
		return errors.Errorf("failed to write file %q: %w", name, err)
	}
	return nil
}
