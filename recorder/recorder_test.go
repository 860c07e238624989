package recorder

import (
	stderr "errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderScenario(t *testing.T) {
	r := New(nil, nil)

	r.Debug("a", nil)
	r.Debug("b", map[string]any{"x": 1})
	r.Warning("c", nil)

	require.True(t, r.HasDebugRecords())
	require.True(t, r.HasWarningRecords())
	require.False(t, r.HasAlertRecords())
	require.True(t, r.HasDebug(Message("b")))
	require.False(t, r.HasDebug(Expected{Message: "b", Context: map[string]any{"x": 2}}))
	require.True(t, r.HasDebug(Expected{Message: "b", Context: map[string]any{"x": 1}}))
	require.True(t, r.HasDebugThatContains("a"))
	require.False(t, r.HasWarningThatContains("a"))
}

func TestRecorderOrderAndCounts(t *testing.T) {
	r := New(nil, nil)

	calls := []struct {
		level any
		msg   string
	}{
		{Info, "i1"},
		{Error, "e1"},
		{Info, "i2"},
		{7, "n1"},
		{Error, "e2"},
		{Info, "i3"},
		{"7", "s1"},
	}

	for _, c := range calls {
		require.NoError(t, r.Log(c.level, c.msg, nil))
	}

	recs := r.Records()
	require.Len(t, recs, len(calls))
	require.Equal(t, len(calls), r.Len())
	for i, c := range calls {
		require.Equal(t, c.msg, recs[i].Message)
	}

	infos, err := r.RecordsOf(Info)
	require.NoError(t, err)
	require.Equal(t, []string{"i1", "i2", "i3"}, messages(infos))

	errs, err := r.RecordsOf(Error)
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2"}, messages(errs))

	numeric, err := r.RecordsOf(7)
	require.NoError(t, err)
	require.Equal(t, []string{"n1"}, messages(numeric))

	str, err := r.RecordsOf("7")
	require.NoError(t, err)
	require.Equal(t, []string{"s1"}, messages(str))

	none, err := r.RecordsOf(Alert)
	require.NoError(t, err)
	require.Empty(t, none)

	ids := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		require.NotEmpty(t, rec.ID)
		ids[rec.ID] = struct{}{}
	}
	require.Len(t, ids, len(recs))
}

func TestRecorderContextIsCopied(t *testing.T) {
	r := New(nil, nil)

	ctx := map[string]any{"foo": "bar"}
	r.Info("msg", ctx)
	ctx["foo"] = "baz"

	require.True(t, r.HasInfo(Expected{Message: "msg", Context: map[string]any{"foo": "bar"}}))
	require.False(t, r.HasInfo(Expected{Message: "msg", Context: map[string]any{"foo": "baz"}}))

	recs := r.Records()
	recs[0].Context["foo"] = "qux"
	require.True(t, r.HasInfo(Expected{Message: "msg", Context: map[string]any{"foo": "bar"}}))
}

func TestRecorderNilContext(t *testing.T) {
	r := New(nil, nil)
	r.Notice("msg", nil)

	recs := r.Records()
	require.NotNil(t, recs[0].Context)
	require.True(t, r.HasNotice(Expected{Message: "msg", Context: map[string]any{}}))
	require.False(t, r.HasNotice(Expected{Message: "msg", Context: map[string]any{"k": nil}}))
}

func TestRecorderHasRecords(t *testing.T) {
	r := New(nil, nil)

	for _, l := range Levels {
		ok, err := r.HasRecords(l)
		require.NoError(t, err)
		require.False(t, ok)
	}

	for _, l := range Levels {
		require.NoError(t, r.Log(l, l+" message", nil))

		ok, err := r.HasRecords(l)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestRecorderInvalidLevel(t *testing.T) {
	r := New(nil, nil)

	err := r.Log([]int{1}, "msg", nil)
	require.Error(t, err)
	var ile *InvalidLevelError
	require.True(t, stderr.As(err, &ile))
	require.Equal(t, 0, r.Len())

	_, err = r.HasRecords(nil)
	require.Error(t, err)
	require.True(t, stderr.As(err, &ile))

	_, err = r.HasRecord(Message("msg"), 1.5)
	require.True(t, stderr.As(err, &ile))

	_, err = r.HasRecordThatContains("msg", struct{}{})
	require.True(t, stderr.As(err, &ile))

	_, err = r.HasRecordThatMatches("msg", map[string]string{})
	require.True(t, stderr.As(err, &ile))

	_, err = r.HasRecordThatPasses(func(Record, int) bool { return true }, false)
	require.True(t, stderr.As(err, &ile))

	_, err = r.RecordsOf(nil)
	require.True(t, stderr.As(err, &ile))
}

func TestRecorderNilPointerLevel(t *testing.T) {
	r := New(nil, nil)

	var lvl *ptrLevel
	require.NotPanics(t, func() {
		err := r.Log(lvl, "msg", nil)
		require.Error(t, err)

		var ile *InvalidLevelError
		require.True(t, stderr.As(err, &ile))
		require.Equal(t, "*recorder.ptrLevel", ile.Type)
	})
	require.Equal(t, 0, r.Len())

	require.NotPanics(t, func() {
		_, err := r.HasRecords(lvl)
		require.Error(t, err)
	})
}

func TestRecorderInterpolateNilPointer(t *testing.T) {
	r := New(&Config{InterpolateOnLog: true}, nil)

	var (
		s *ptrLevel
		e *ptrError
	)
	require.NotPanics(t, func() {
		r.Info("value [{s}] [{e}]", map[string]any{"s": s, "e": e})
	})
	require.True(t, r.HasInfo(Message("value [] []")))
}

type ptrError struct{}

func (*ptrError) Error() string {
	return "unreachable"
}

func TestRecorderNilArguments(t *testing.T) {
	r := New(nil, nil)
	r.Info("msg", nil)

	_, err := r.HasRecord(nil, Info)
	require.Error(t, err)

	_, err = r.HasRecordThatPasses(nil, Info)
	require.Error(t, err)

	require.False(t, r.HasInfo(nil))
	require.False(t, r.HasInfoThatPasses(nil))

	err = r.LogStringer(Info, nil, nil)
	require.Error(t, err)
}

func TestRecorderLogStringer(t *testing.T) {
	r := New(nil, nil)

	require.NoError(t, r.LogStringer(Warning, stringerLevel{}, nil))
	require.True(t, r.HasWarning(Message(Notice)))
}

func TestRecorderEnumLevelMatchesString(t *testing.T) {
	r := New(nil, nil)

	require.NoError(t, r.Log(sevHigh, "enum", nil))

	ok, err := r.HasRecord(Message("enum"), Critical)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, r.HasCriticalRecords())

	ok, err = r.HasRecords(sevHigh)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRecorderHasRecordThatMatches(t *testing.T) {
	r := New(nil, nil)
	r.Debug("debug Message", nil)
	r.Info("Message info", nil)

	ok, err := r.HasRecordThatMatches("/^[a-z]+ Message$/i", Debug)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.HasRecordThatMatches("/^[a-z]+ Message$/i", Info)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = r.HasRecordThatMatches(`^Message \w+$`, Info)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = r.HasRecordThatMatches("(", Info)
	require.Error(t, err)

	r.Info("héllo world", nil)
	ok, err = r.HasRecordThatMatches("/^h.llo/u", Info)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = r.HasRecordThatMatches("/^h.llo/x", Info)
	require.Error(t, err)
}

func TestRecorderHasRecordThatPasses(t *testing.T) {
	r := New(nil, nil)
	r.Error("first", map[string]any{"n": 1})
	r.Error("second", map[string]any{"n": 2})
	r.Error("third", map[string]any{"n": 3})

	var visited []int
	ok, err := r.HasRecordThatPasses(func(rec Record, i int) bool {
		visited = append(visited, i)
		return rec.Context["n"] == 2
	}, Error)
	require.NoError(t, err)
	require.True(t, ok)
	// the iteration stops on the first match
	require.Equal(t, []int{0, 1}, visited)

	ok, err = r.HasRecordThatPasses(func(Record, int) bool { return true }, Info)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecorderIdempotentQueries(t *testing.T) {
	r := New(nil, nil)
	r.Alert("boom", map[string]any{"code": 500})

	for i := 0; i < 3; i++ {
		require.True(t, r.HasAlertRecords())
		require.True(t, r.HasAlert(Message("boom")))
		require.True(t, r.HasAlertThatContains("oo"))
		require.True(t, r.HasAlertThatMatches("^b"))
		require.False(t, r.HasEmergencyRecords())
	}
}

func TestRecorderReset(t *testing.T) {
	r := New(nil, nil)

	for _, l := range Levels {
		require.NoError(t, r.Log(l, "msg", nil))
	}
	require.Equal(t, len(Levels), r.Len())

	r.Reset()

	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Records())
	for _, l := range Levels {
		ok, err := r.HasRecords(l)
		require.NoError(t, err)
		require.False(t, ok)
	}

	r.Info("after", nil)
	require.True(t, r.HasInfo(Message("after")))
	require.Equal(t, 1, r.Len())
}

func TestRecorderInterpolateOnLog(t *testing.T) {
	r := New(&Config{InterpolateOnLog: true}, nil)

	ctx := map[string]any{"user": "bob", "id": 42, "tags": []string{"a"}}
	r.Info("user {user} with id {id} has {tags}", ctx)

	require.True(t, r.HasInfo(Message("user bob with id 42 has {tags}")))
	require.True(t, r.HasInfo(Expected{Message: "user bob with id 42 has {tags}", Context: ctx}))

	plain := New(nil, nil)
	plain.Info("user {user}", ctx)
	require.True(t, plain.HasInfo(Message("user {user}")))
}

func TestRecorderChannel(t *testing.T) {
	r := New(&Config{Channel: "app"}, nil)
	r.Info("msg", nil)
	require.Equal(t, "app", r.Records()[0].Channel)

	r = New(nil, nil)
	r.Info("msg", nil)
	require.Equal(t, "testlogger", r.Records()[0].Channel)
}

func TestRecorderConcurrent(t *testing.T) {
	r := New(nil, nil)

	const writers = 8
	const perWriter = 100

	wg := &sync.WaitGroup{}
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				r.Info(fmt.Sprintf("writer %d message %d", w, i), nil)
			}
		}(w)

		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = r.HasInfoThatContains("writer")
				_ = r.HasInfoThatPasses(func(rec Record, _ int) bool {
					return strings.HasSuffix(rec.Message, "99")
				})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, writers*perWriter, r.Len())
	infos, err := r.RecordsOf(Info)
	require.NoError(t, err)
	require.Len(t, infos, writers*perWriter)

	// the bucket is a subsequence of the chronological index
	recs := r.Records()
	for i := range recs {
		assert.Equal(t, recs[i].ID, infos[i].ID)
	}
}

func messages(recs []Record) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Message)
	}

	return out
}
