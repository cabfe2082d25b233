// Package ytexport exports YouTube channel video metadata to CSV files.
//
// It resolves heterogeneous channel references (canonical IDs, channel and
// legacy-user URLs, @handles, custom-URL slugs, free-text queries) against
// the YouTube Data API v3, enumerates each channel's full upload history via
// cursor pagination, batch-fetches per-video details, and serializes the
// results into two tabular outputs: a per-channel video table and an
// aggregate channel summary table.
//
// # Quick start
//
// Resolve a reference and list a channel's uploads:
//
//	ctx := context.Background()
//	client, err := youtube.NewClient(ctx, os.Getenv("YT_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	id, found, err := youtube.ResolveChannelID(ctx, client, "@somehandle")
//	if err != nil || !found {
//		log.Fatal("no such channel")
//	}
//	channel, err := youtube.FetchChannel(ctx, client, id)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ids, err := youtube.CollectUploads(ctx, client, channel.UploadsPlaylistID, nil)
//
// Run the whole pipeline over an input file:
//
//	refs, err := export.ReadChannelRefs("channels.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := &export.Pipeline{API: client, OutDir: "output"}
//	summary, err := p.Run(ctx, refs)
//
// # Error handling
//
// Failures sort into three kinds, all checkable with errors.Is/As:
//
//	var apiErr *youtube.APIError       // the platform rejected the call
//	var transport *youtube.TransportError // the call never completed
//	errors.Is(err, youtube.ErrChannelNotFound) // valid request, no such channel
//
// The pipeline treats all three as per-input failures: one bad reference is
// logged and skipped, and the run continues.
//
// # Packages
//
//   - youtube: identifier classification, channel resolution, upload
//     enumeration, batched video detail fetching
//   - export: input reading, CSV serialization, the pipeline driver
//   - config: environment-driven configuration
package ytexport
