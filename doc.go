// Package snipmatch reports how many fixed-length chunks of a query document
// occur as substrings of a target document.
//
// The query is cut into non-overlapping chunks of k bytes (a trailing
// remainder shorter than k is discarded) and each chunk is looked up in the
// target with one of four engines:
//
//   - AlgorithmExact: whole-document byte equality, the trivial baseline
//   - AlgorithmSimple: brute-force substring scan per chunk
//   - AlgorithmRabinKarp: rolling-hash scan per chunk with byte verification
//   - AlgorithmBatch: one Bloom filter holding every chunk hash, probed by a
//     single rolling scan of the target
//
// The batch engine trades exactness for speed: it runs in O(n+m) for an
// n-byte target and m-byte query, but skips byte verification, so Bloom
// false positives and hash collisions can overcount. The other engines never
// report a chunk that is not literally present.
//
// # Quick start
//
//	m, err := snipmatch.New(
//	    snipmatch.WithAlgorithm(snipmatch.AlgorithmBatch),
//	    snipmatch.WithChunkSize(20),
//	)
//	if err != nil {
//	    return err
//	}
//
//	query := textnorm.Normalize(rawQuery)
//	target := textnorm.Normalize(rawTarget)
//
//	report, err := m.Match(ctx, query, target)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d chunks matched\n", report.MatchedChunks, report.TotalChunks)
//
// Both documents must pass through the same normalization (package textnorm)
// or chunk boundaries and hashes will not line up. Documents can be loaded
// from memory, local files, or object storage via package docstore.
package snipmatch
