package assert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sort"
)

// AssertData is extra state dumped next to every failed assertion, e.g.
// the configuration a tool was started with.
type AssertData interface {
	Dump() string
}

var assertData map[string]AssertData = map[string]AssertData{}
var writer io.Writer = os.Stderr

func AddAssertData(key string, value AssertData) {
	assertData[key] = value
}

func RemoveAssertData(key string) {
	delete(assertData, key)
}

func ToWriter(w io.Writer) {
	writer = w
}

func runAssert(msg string, args ...interface{}) {
	slogValues := []interface{}{
		"msg",
		msg,
		"area",
		"Assert",
	}
	slogValues = append(slogValues, args...)

	keys := make([]string, 0, len(assertData))
	for k := range assertData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		slogValues = append(slogValues, k, assertData[k].Dump())
	}

	fmt.Fprintf(writer, "ASSERT\n")
	for i := 0; i+1 < len(slogValues); i += 2 {
		fmt.Fprintf(writer, "   %s=%v\n", slogValues[i], slogValues[i+1])
	}
	fmt.Fprintln(writer, string(debug.Stack()))
	os.Exit(1)
}

func Assert(truth bool, msg string, data ...any) {
	if !truth {
		runAssert(msg, data...)
	}
}

func NotNil(item any, msg string) {
	if item == nil {
		slog.Error("NotNil#nil encountered")
		runAssert(msg)
	}
}

func Never(msg string, data ...any) {
	Assert(false, msg, data...)
}

func NoError(err error, msg string, data ...any) {
	if err != nil {
		slog.Error("NoError#error encountered", "error", err)
		runAssert(msg, data...)
	}
}
