package pipeline

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type setParquetRow struct {
	ActivityTitle   string `parquet:"name=activity_title, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TSUTCISO        string `parquet:"name=ts_utc_iso, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DurationS       int64  `parquet:"name=duration_s, type=INT64"`
	Repetitions     int64  `parquet:"name=repetitions, type=INT64"`
	WeightKG        int64  `parquet:"name=weight_kg, type=INT64"`
	SetType         int64  `parquet:"name=set_type, type=INT64"`
	WktStepIndex    int64  `parquet:"name=wkt_step_index, type=INT64"`
	WktStepName     string `parquet:"name=wkt_step_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Category        int32  `parquet:"name=category, type=INT32"`
	CategorySubtype int32  `parquet:"name=category_subtype, type=INT32"`
	MessageIndex    int64  `parquet:"name=message_index, type=INT64"`
}

func writeSetsParquet(path string, rows []SetRow) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(setParquetRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, r := range rows {
		row := setParquetRow{
			ActivityTitle:   r.ActivityTitle,
			TSUTCISO:        r.TimestampUTC,
			DurationS:       int64(r.DurationS),
			Repetitions:     int64(r.Repetitions),
			WeightKG:        int64(r.WeightKG),
			SetType:         int64(r.SetType),
			WktStepIndex:    int64(r.WktStepIndex),
			WktStepName:     r.WktStepName,
			Category:        int32(r.Category),
			CategorySubtype: int32(r.CategorySubtype),
			MessageIndex:    int64(r.MessageIndex),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func writeSetsCSV(path string, rows []SetRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"activity_title", "ts_utc_iso", "duration_s", "repetitions", "weight_kg",
		"set_type", "wkt_step_index", "wkt_step_name", "category", "category_subtype", "message_index",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.ActivityTitle,
			r.TimestampUTC,
			strconv.Itoa(r.DurationS),
			strconv.Itoa(r.Repetitions),
			strconv.Itoa(r.WeightKG),
			strconv.Itoa(r.SetType),
			strconv.Itoa(r.WktStepIndex),
			r.WktStepName,
			strconv.FormatUint(uint64(r.Category), 10),
			strconv.FormatUint(uint64(r.CategorySubtype), 10),
			strconv.Itoa(r.MessageIndex),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
