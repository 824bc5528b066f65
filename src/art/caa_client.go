package art

import (
	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"
)

// frontCoverSize is the Cover Art Archive thumbnail size requested for covers.
// Playlist tiles are at most half a canvas wide so larger images are wasted.
const frontCoverSize = cca.ImageSize500

//counterfeiter:generate . CAAClient

// CAAClient gets the front cover of a release from the Cover Art Archive.
// *cca.CAAClient implements it.
type CAAClient interface {
	GetReleaseFront(mbid uuid.UUID, size int) (image cca.CoverArtImage, err error)
}

var _ CAAClient = (*cca.CAAClient)(nil)
