/*
Package artfetch resolves the artwork for a single song asynchronously.

A Service tries a chain of Sources in order: the picture embedded in the song's
tags, an image file in the song's directory and finally the album front cover
from the internet. The first image which could be decoded wins. Every fetch runs
on its own goroutine, bounded by a concurrency limit, and could be cancelled
through its Handle.
*/
package artfetch
