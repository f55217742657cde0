package main

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// GameRecord is one row of the parquet results log.
type GameRecord struct {
	Game       int32 `parquet:"name=game, type=INT32"`
	Seed       int64 `parquet:"name=seed, type=INT64"`
	Pieces     int32 `parquet:"name=pieces, type=INT32"`
	Lines      int32 `parquet:"name=lines, type=INT32"`
	Singles    int32 `parquet:"name=singles, type=INT32"`
	Doubles    int32 `parquet:"name=doubles, type=INT32"`
	Triples    int32 `parquet:"name=triples, type=INT32"`
	Tetrises   int32 `parquet:"name=tetrises, type=INT32"`
	ToppedOut  bool  `parquet:"name=topped_out, type=BOOLEAN"`
	DurationMs int64 `parquet:"name=duration_ms, type=INT64"`
}

func (r Result) Record(game int) GameRecord {
	return GameRecord{
		Game:       int32(game),
		Seed:       int64(r.Seed),
		Pieces:     int32(r.Pieces),
		Lines:      int32(r.Lines),
		Singles:    int32(r.Clears[1]),
		Doubles:    int32(r.Clears[2]),
		Triples:    int32(r.Clears[3]),
		Tetrises:   int32(r.Clears[4]),
		ToppedOut:  r.ToppedOut,
		DurationMs: r.Duration.Milliseconds(),
	}
}

// WriteParquet writes records to a snappy-compressed parquet file at path.
func WriteParquet(path string, records []GameRecord) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameRecord), 1)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}
