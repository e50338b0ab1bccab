package checkhistory

import "strings"

// Open picks the store from the path: *.json is a JSONMemory, anything else
// is handed to libsql.
func Open(path string) (Store, error) {
	if strings.HasSuffix(path, ".json") {
		j, err := NewJSONMemory(path)
		if err != nil {
			return nil, err
		}
		return j, nil
	}

	db, err := NewSqlite(path)
	if err != nil {
		return nil, err
	}
	db.SetSqliteModes()
	return db, nil
}
