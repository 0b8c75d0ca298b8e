package parquet

import (
	"testing"
	"time"

	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/assert"
)

func TestConvertFreqRows(t *testing.T) {
	rows := []schema.FreqRow{
		{Word: "corpus", Total: 12.4, Mean: 2.5, Stddev: 0.5, SeriesRel: []float64{2.0, 3.0}},
		{Word: "token", Total: 3.1, Mean: 0.8, Stddev: 0.2, SeriesRel: nil},
	}

	records := ConvertFreqRows(rows)

	assert.Len(t, records, 2)
	assert.Equal(t, "corpus", records[0].Word)
	assert.Equal(t, "2,3", records[0].RelFreqs)
	assert.Equal(t, int32(2), records[0].BinCount)
	assert.Equal(t, "", records[1].RelFreqs)
	assert.Equal(t, int32(0), records[1].BinCount)
}

func TestConvertRunSummaries(t *testing.T) {
	ended := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runs := []schema.RunSummary{
		{RunID: 1, StartTime: ended.Add(-time.Minute), EndTime: &ended, Documents: 10, Tokens: 500, VocabSize: 120, ConfigParams: `{"interval":7}`},
		{RunID: 2, StartTime: ended, Documents: 0, Tokens: 0, VocabSize: 0},
	}

	records := ConvertRunSummaries(runs)

	assert.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].RunID)
	assert.NotNil(t, records[0].EndTime)
	assert.NotNil(t, records[0].ConfigParams)
	assert.Equal(t, `{"interval":7}`, *records[0].ConfigParams)
	assert.Nil(t, records[1].EndTime)
	assert.Nil(t, records[1].ConfigParams)
}

func TestWriteFreqRecords(t *testing.T) {
	records := ConvertFreqRows([]schema.FreqRow{
		{Word: "corpus", Total: 12.4, Mean: 2.5, Stddev: 0.5, SeriesRel: []float64{2.0, 3.0}},
	})

	path := t.TempDir() + "/freqs.parquet"
	err := WriteFreqRecords(records, path)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteFreqRecordsBadPath(t *testing.T) {
	err := WriteFreqRecords([]FreqRecord{}, t.TempDir()+"/missing/freqs.parquet")
	assert.Error(t, err)
}
