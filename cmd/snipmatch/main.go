// Command snipmatch reports how much of a query document reappears in one or
// more target documents.
//
//	snipmatch [-t algorithm] [-k size] [-p n] [-q] [-c config.json] query_doc doc [doc ...]
//
// Documents are plain paths, s3://bucket/key names, or minio://bucket/key
// names (MinIO connection details come from the config file). Names ending in
// .zst or .lz4 are decompressed transparently. All documents are normalized
// (lowercased, whitespace collapsed) before matching.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/time/rate"

	"github.com/hupe1980/snipmatch"
	"github.com/hupe1980/snipmatch/docstore"
	miniostore "github.com/hupe1980/snipmatch/docstore/minio"
	s3store "github.com/hupe1980/snipmatch/docstore/s3"
	"github.com/hupe1980/snipmatch/rkhash"
	"github.com/hupe1980/snipmatch/textnorm"
)

func main() {
	var (
		algoFlag   = flag.String("t", "", "matching algorithm: exact|simple|rk|batch (or 0-3)")
		chunkFlag  = flag.Int("k", 0, "chunk size in bytes")
		parFlag    = flag.Int("p", 0, "parallelism of the batch scan")
		quietFlag  = flag.Bool("q", false, "suppress hash and filter diagnostics")
		configFlag = flag.String("c", "", "path to JSON config file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] query_doc doc [doc ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *configFlag, *algoFlag, *chunkFlag, *parFlag, *quietFlag, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "snipmatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, algoFlag string, chunkFlag, parFlag int, quiet bool, names []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if algoFlag != "" {
		cfg.Algorithm = algoFlag
	}
	if chunkFlag > 0 {
		cfg.ChunkSize = chunkFlag
	}
	if parFlag > 0 {
		cfg.Parallelism = parFlag
	}

	algo, err := snipmatch.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	logger := snipmatch.NoopLogger()
	if !quiet {
		logger = snipmatch.NewTextLogger(slog.LevelDebug)
	}

	m, err := snipmatch.New(
		snipmatch.WithAlgorithm(algo),
		snipmatch.WithChunkSize(cfg.ChunkSize),
		snipmatch.WithModulus(rkhash.Modulus(cfg.Modulus)),
		snipmatch.WithHashCount(cfg.HashCount),
		snipmatch.WithBloomBitsPerChunk(cfg.BitsPerChunk),
		snipmatch.WithParallelism(cfg.Parallelism),
		snipmatch.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	docs, err := fetchDocs(ctx, cfg, names)
	if err != nil {
		return err
	}
	for _, name := range names {
		docs[name] = textnorm.Normalize(docs[name])
	}

	query := docs[names[0]]
	for _, name := range names[1:] {
		report, err := m.Match(ctx, query, docs[name])
		if err != nil {
			return err
		}
		printReport(name, report, quiet)
	}

	return nil
}

// fetchDocs resolves every document name, grouping names by backing store so
// each group is fetched concurrently.
func fetchDocs(ctx context.Context, cfg *config, names []string) (map[string][]byte, error) {
	groups := make(map[string][]string)
	for _, name := range names {
		scheme, bucket, _, err := splitName(name)
		if err != nil {
			return nil, err
		}
		groupKey := scheme + "/" + bucket
		groups[groupKey] = append(groups[groupKey], name)
	}

	var fetchOpts []func(*docstore.FetchOptions)
	if cfg.FetchRate > 0 {
		fetchOpts = append(fetchOpts, func(o *docstore.FetchOptions) {
			o.Limiter = rate.NewLimiter(rate.Limit(cfg.FetchRate), 1)
		})
	}

	docs := make(map[string][]byte, len(names))
	for _, groupNames := range groups {
		scheme, bucket, _, _ := splitName(groupNames[0])

		store, err := newStore(ctx, cfg, scheme, bucket)
		if err != nil {
			return nil, err
		}

		keys := make([]string, len(groupNames))
		for i, name := range groupNames {
			_, _, keys[i], _ = splitName(name)
		}

		fetched, err := docstore.FetchAll(ctx, store, keys, fetchOpts...)
		if err != nil {
			return nil, err
		}
		for i, name := range groupNames {
			docs[name] = fetched[keys[i]]
		}
	}

	return docs, nil
}

// splitName breaks a document name into scheme, bucket and key. Plain paths
// have an empty scheme and bucket.
func splitName(name string) (scheme, bucket, key string, err error) {
	for _, s := range []string{"s3", "minio"} {
		rest, ok := strings.CutPrefix(name, s+"://")
		if !ok {
			continue
		}
		bucket, key, ok = strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return "", "", "", fmt.Errorf("malformed %s document name %q", s, name)
		}
		return s, bucket, key, nil
	}
	return "", "", name, nil
}

func newStore(ctx context.Context, cfg *config, scheme, bucket string) (docstore.Store, error) {
	var inner docstore.Store

	switch scheme {
	case "s3":
		s, err := s3store.NewFromDefaultConfig(ctx, bucket, "")
		if err != nil {
			return nil, err
		}
		inner = s

	case "minio":
		if cfg.Minio.Endpoint == "" {
			return nil, fmt.Errorf("minio document names need minio.endpoint in the config file")
		}
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		inner = miniostore.NewStore(client, bucket, "")

	default:
		inner = docstore.NewLocal("")
	}

	return docstore.NewDecompressing(inner), nil
}

func printReport(name string, r *snipmatch.Report, quiet bool) {
	if !quiet {
		if len(r.Traces) > 0 {
			tr := r.Traces[0]
			fmt.Printf("hash value of the first chunk: %d\n", tr.PatternHash)
			for _, h := range tr.WindowHashes {
				fmt.Printf("hash value: %d\n", h)
			}
		}
		if r.BloomDump != "" {
			fmt.Printf("bloom filter of the query chunks (first bits): %s\n", r.BloomDump)
		}
		if r.MatchedWindows > 0 {
			fmt.Printf("%d window positions matched\n", r.MatchedWindows)
		}
	}

	fmt.Printf("%s: %d chunks matched (out of %d), percentage: %.2f\n",
		name, r.MatchedChunks, r.TotalChunks, r.Percentage())
}
