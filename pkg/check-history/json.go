package checkhistory

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

type JSONMemoryFile struct {
	Runs []PropertyRun `json:"runs"`
}

// JSONMemory keeps the history in a single JSON file, rewritten on every
// Record. Fine for a handful of runs, use Sqlite past that.
type JSONMemory struct {
	file  string
	runs  []PropertyRun
	mutex sync.Mutex
}

func NewJSONMemoryAndClear(path string) (*JSONMemory, error) {
	err := os.WriteFile(path, []byte(`{"runs": []}`), 0644)
	if err != nil {
		return nil, err
	}
	return &JSONMemory{file: path}, nil
}

// NewJSONMemory loads path if it exists.
func NewJSONMemory(path string) (*JSONMemory, error) {
	j := &JSONMemory{file: path}

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, err
	}

	var data JSONMemoryFile
	if err := json.Unmarshal(contents, &data); err != nil {
		return nil, err
	}
	j.runs = data.Runs

	return j, nil
}

func (j *JSONMemory) Record(runs []PropertyRun) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	for _, run := range runs {
		update := false
		for i, r := range j.runs {
			if r.RunId == run.RunId && r.Property == run.Property {
				j.runs[i] = run
				update = true
			}
		}

		if !update {
			j.runs = append(j.runs, run)
		}
	}

	bytes, err := json.Marshal(JSONMemoryFile{Runs: j.runs})
	if err != nil {
		return err
	}

	return os.WriteFile(j.file, bytes, 0644)
}

func (j *JSONMemory) Iter() func(yield func(i int, r PropertyRun) bool) {
	return func(yield func(i int, r PropertyRun) bool) {
		j.mutex.Lock()
		defer j.mutex.Unlock()
		for i, r := range j.runs {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (j *JSONMemory) History(property string) ([]PropertyRun, error) {
	out := []PropertyRun{}
	for _, r := range j.Iter() {
		if r.Property == property {
			out = append(out, r)
		}
	}
	return out, nil
}

func (j *JSONMemory) RunCount() (int, error) {
	seen := map[string]struct{}{}
	for _, r := range j.Iter() {
		seen[r.RunId] = struct{}{}
	}
	return len(seen), nil
}

func (j *JSONMemory) Close() error {
	return nil
}
