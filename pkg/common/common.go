package common

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var sfnode *snowflake.Node

func init() {
	var err error
	sfnode, err = snowflake.NewNode(int64(1))
	if err != nil {
		zap.S().Errorf("init snowflake node error %s", err.Error())
	}
}

// UUIDint64 returns a unique, time-ordered int64 id
func UUIDint64() int64 {
	return sfnode.Generate().Int64()
}

// UUID returns UUIDint64 as a decimal string
func UUID() string {
	return strconv.FormatInt(UUIDint64(), 10)
}

// IfEmptyStr returns def when src is empty
func IfEmptyStr(src string, def string) string {
	if strings.TrimSpace(src) == "" {
		return def
	}
	return src
}

// TrimAll trims every string in vals and drops the empty ones
func TrimAll(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Slugify lower-cases s and joins its letter/digit runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
