/*
Package art finds album covers for songs over the internet.

A song's artist and album are searched for as a release in MusicBrainz. The
front covers of the matching releases are then looked up in the Cover Art
Archive, best match first.

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/API
*/
package art
