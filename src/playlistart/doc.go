/*
Package playlistart composes a single cover image for a playlist out of the art of
its first songs.

A Builder fetches the art for up to four songs concurrently and tiles whatever
arrives into a square canvas: one image is used as is, two or three are put side
by side in vertical strips and four make a 2x2 grid. Renders are debounced so that
images which arrive close to each other cause a single render. A watchdog makes
sure the caller gets the best partial composite when some of the art never
arrives.

All state changes of a Builder happen on its own event loop goroutine. Start and
FreeMemory invalidate the running build synchronously, so no result of a
superseded build reaches its callback after they return.
*/
package playlistart
