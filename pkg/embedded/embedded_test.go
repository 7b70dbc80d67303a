package embedded

import (
	"testing"
	"testing/fstest"
)

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("window:\n  width: 800\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"普通路径", "data/game.yaml", false},
		{"带 ./ 前缀", "./data/game.yaml", false},
		{"文件不存在", "data/missing.yaml", true},
		{"非 data 前缀", "assets/bat.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

func TestExists(t *testing.T) {
	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("{}")},
	})

	if !Exists("data/game.yaml") {
		t.Error("data/game.yaml should exist")
	}
	if Exists("data/other.yaml") {
		t.Error("data/other.yaml should not exist")
	}
}
