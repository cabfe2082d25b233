package ytexport

import (
	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/youtube"
)

// Error types exported for library users, aliased from the youtube package.
//
// Checking for a sentinel:
//
//	if errors.Is(err, ytexport.ErrChannelNotFound) {
//		fmt.Println("channel does not exist")
//	}
//
// Extracting the platform-reported message:
//
//	var apiErr *ytexport.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("api rejected call: %s\n", apiErr.Message)
//	}
type (
	// APIError is an error reported by the Data API itself.
	APIError = youtube.APIError
	// TransportError is a network or decoding failure below the API.
	TransportError = youtube.TransportError
)

// Sentinel errors re-exported from the youtube package.
var (
	// ErrChannelNotFound indicates a channel ID the platform does not know.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrStopEnumeration stops upload enumeration early without error.
	ErrStopEnumeration = youtube.ErrStopEnumeration
)
