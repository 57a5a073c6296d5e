package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileMode 擁有者讀寫，其他人唯讀
const FileMode fs.FileMode = 0644

// Journal 是只追加的 JSON Lines 交易日誌。
// 每筆記錄寫入後立即 Sync，只做稽核用途，不會被重放回記憶體。
type Journal struct {
	file *os.File
	mu   sync.Mutex
}

// Open 開啟或建立日誌檔
// O_RDWR 讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileMode)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return &Journal{file: file}, nil
}

// Write 寫入一筆記錄並刷入硬碟
func (j *Journal) Write(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := json.NewEncoder(j.file).Encode(v); err != nil {
		return err
	}
	return j.file.Sync()
}

// Close 關閉檔案
func (j *Journal) Close() error {
	return j.file.Close()
}

// ReadAll 從頭逐筆讀取所有記錄，供稽核或檢視日誌內容使用。
// 程式啟動時不會呼叫它重放交易。
// callback 接收單筆記錄的原始 JSON，避免一次將所有資料載入記憶體
func (j *Journal) ReadAll(callback func(raw json.RawMessage) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(j.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
}
