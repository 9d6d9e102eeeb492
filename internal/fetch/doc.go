package fetch

// Package fetch retrieves media from YouTube via github.com/ytget/ytdlp/v2.
// It downloads single videos into a videos/ subdirectory and full audio
// playlists into playlists/<title>/, propagating progress to the caller.
