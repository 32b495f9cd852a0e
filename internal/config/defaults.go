package config

import (
	_ "embed"
)

//go:embed defaults/pinyin.yaml
var defaultPinyinYAML []byte

// DefaultPinyinConfig returns the built-in configuration used when no YAML
// could be read.
func DefaultPinyinConfig() PinyinConfig {
	return PinyinConfig{
		Board: BoardConfig{
			Width:                 6,
			Height:                6,
			MaxRegenerateAttempts: 100,
			MaxCascades:           1000,
		},
		Display: DisplayConfig{
			HanziRatio: 0.5,
			ColorHints: false,
			Hints:      true,
		},
		Endless: EndlessConfig{
			Moves:  30,
			Levels: []int{1},
		},
		Levels: []LevelConfig{
			{
				ID:     1,
				Name:   "Mountains and trees",
				Target: 60,
				Moves:  20,
				Characters: []CharacterConfig{
					{Pinyin: "yī", Hanzi: "一", Meaning: "one"},
					{Pinyin: "yī", Hanzi: "衣", Meaning: "clothes"},
					{Pinyin: "shān", Hanzi: "山", Meaning: "mountain"},
					{Pinyin: "rén", Hanzi: "人", Meaning: "person"},
					{Pinyin: "mù", Hanzi: "木", Meaning: "wood"},
					{Pinyin: "mù", Hanzi: "目", Meaning: "eye"},
					{Pinyin: "tiān", Hanzi: "天", Meaning: "sky"},
					{Pinyin: "dì", Hanzi: "地", Meaning: "earth"},
				},
			},
			{
				ID:     2,
				Name:   "Counting",
				Target: 100,
				Moves:  20,
				Characters: []CharacterConfig{
					{Pinyin: "sān", Hanzi: "三", Meaning: "three"},
					{Pinyin: "qī", Hanzi: "七", Meaning: "seven"},
					{Pinyin: "bā", Hanzi: "八", Meaning: "eight"},
					{Pinyin: "jiǔ", Hanzi: "九", Meaning: "nine"},
					{Pinyin: "shí", Hanzi: "十", Meaning: "ten"},
				},
			},
		},
	}
}
