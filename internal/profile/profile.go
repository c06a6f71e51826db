// Package profile fetches the account summary shown on a player card.
package profile

import (
	"context"
	"fmt"
)

// Error codes returned alongside a failed Result. Non-zero API retcodes and
// HTTP status codes are passed through as-is.
const (
	CodeRequestFailed = -999
	CodeNoAccount     = -51
)

// Record is the subset of the account summary the card uses.
type Record struct {
	UID        string `json:"game_uid"`
	Nickname   string `json:"nickname"`
	Level      int    `json:"level"`
	RegionName string `json:"region_name"`
}

// Result is either a Record or an error code, never both.
type Result struct {
	record *Record
	code   int
}

// OK wraps a fetched record.
func OK(rec Record) Result {
	return Result{record: &rec}
}

// Fail wraps an error code.
func Fail(code int) Result {
	return Result{code: code}
}

// Ok reports whether the result carries a record.
func (r Result) Ok() bool {
	return r.record != nil
}

// Record returns the fetched record and true, or a zero Record and false.
func (r Result) Record() (Record, bool) {
	if r.record == nil {
		return Record{}, false
	}
	return *r.record, true
}

// Code returns the error code of a failed result, 0 otherwise.
func (r Result) Code() int {
	return r.code
}

func (r Result) String() string {
	if r.record != nil {
		return fmt.Sprintf("ok(%s)", r.record.Nickname)
	}
	return fmt.Sprintf("fail(%d)", r.code)
}

// DataSource fetches profile summaries. Implementations report every failure
// through the Result code.
type DataSource interface {
	GetUserInfo(ctx context.Context, uid string) Result
}

// Func adapts a function to DataSource.
type Func func(ctx context.Context, uid string) Result

// GetUserInfo implements DataSource.
func (f Func) GetUserInfo(ctx context.Context, uid string) Result {
	return f(ctx, uid)
}
