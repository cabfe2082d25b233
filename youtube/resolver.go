package youtube

import "context"

// ResolveChannelID turns any raw channel reference into a canonical channel
// ID. The second return value reports whether a channel was found: a stale
// legacy username or a search with no hits resolves to nothing without being
// an error. API failures propagate unchanged.
//
// Search resolution is best-effort: an ambiguous query may resolve to a
// plausible-but-wrong channel, since only the top result is taken.
func ResolveChannelID(ctx context.Context, api API, raw string) (string, bool, error) {
	ident := ClassifyIdentifier(raw)

	switch ident.Kind {
	case KindID:
		// Already canonical, no network call.
		return ident.Value, true, nil

	case KindUsername:
		resp, err := api.ChannelByUsername(ctx, ident.Value)
		if err != nil {
			return "", false, err
		}
		if len(resp.Items) == 0 {
			return "", false, nil
		}
		return resp.Items[0].Id, true, nil

	default:
		if ident.Value == "" {
			// An empty input classifies as an empty query; nothing to
			// search for.
			return "", false, nil
		}
		resp, err := api.SearchChannel(ctx, ident.Value)
		if err != nil {
			return "", false, err
		}
		if len(resp.Items) == 0 || resp.Items[0].Id == nil || resp.Items[0].Id.ChannelId == "" {
			return "", false, nil
		}
		return resp.Items[0].Id.ChannelId, true, nil
	}
}
