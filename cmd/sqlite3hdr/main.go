package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/RichardKnop/sqlite3hdr/internal/pkg/logging"
	"github.com/RichardKnop/sqlite3hdr/internal/pkg/util"
	"github.com/RichardKnop/sqlite3hdr/internal/sqlite"
)

func main() {
	var jsonOutput bool
	flag.BoolVar(&jsonOutput, "json", false, "Print the decoded header as JSON")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	logConf := logging.DefaultConfig()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	l, err := logging.ParseLevel(level)
	if err != nil {
		panic(err)
	}
	logConf.Level = zap.NewAtomicLevelAt(l)

	logger, err := logConf.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	fileName := flag.Arg(0)
	logger.Debug("decoding database header", zap.String("file", fileName))

	aHeader, err := sqlite.ReadHeaderFile(fileName)
	if err != nil {
		logger.Error("header decode failed", zap.String("file", fileName), zap.Error(err))
		fmt.Fprintf(os.Stderr, "%s: %s\n", fileName, err)
		os.Exit(1)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(aHeader); err != nil {
			panic(err)
		}
		return
	}

	util.PrintFields(os.Stdout, headerRows(aHeader))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-json] <database-file>\n", os.Args[0])
}

func headerRows(h sqlite.Header) [][2]string {
	freelist := "empty"
	if !h.Freelist.Empty() {
		freelist = fmt.Sprintf("%d pages, first trunk at page %d", h.Freelist.Count, h.Freelist.PageIndex)
	}

	vacuum := "none"
	if h.Vacuum != nil {
		vacuum = fmt.Sprintf("%s, largest root page %d", h.Vacuum.Mode, h.Vacuum.LargestRootPage)
	}

	databaseSize := fmt.Sprintf("%d pages", h.InHeaderDatabaseSize)
	if !h.InHeaderDatabaseSizeValid() {
		databaseSize += " (stale, use the file size instead)"
	}

	return [][2]string{
		{"page size", fmt.Sprint(h.PageSize)},
		{"write version", h.FileFormatWriteVersion.String()},
		{"read version", h.FileFormatReadVersion.String()},
		{"reserved bytes per page", fmt.Sprint(h.ReservedBytesPerPage)},
		{"usable page size", fmt.Sprint(h.UsableSize())},
		{"file change counter", fmt.Sprint(h.FileChangeCounter)},
		{"in-header database size", databaseSize},
		{"freelist", freelist},
		{"schema cookie", fmt.Sprint(h.Schema.Cookie)},
		{"schema format", h.Schema.Format.String()},
		{"suggested page cache size", fmt.Sprint(h.SuggestedPageCacheSize())},
		{"text encoding", h.TextEncoding.String()},
		{"user version", fmt.Sprint(h.UserVersion)},
		{"vacuum", vacuum},
		{"application id", fmt.Sprint(h.ApplicationID)},
		{"version valid for", fmt.Sprint(h.LastUpdate.VersionValidFor)},
		{"written by sqlite version", h.LastUpdate.SQLiteVersion()},
	}
}
