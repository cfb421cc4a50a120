package ui

import (
	"github.com/charmbracelet/bubbles/list"
)

// operation enumerates the explorer lookups the menu offers.
type operation int

const (
	opArtist operation = iota
	opTrack
	opPlaylist
	opRelated
	opFeatured
	opPosts
	opSearchArtists
	opSearchTracks
	opSearchPlaylists
)

// menuItem wraps an operation to implement [list.Item].
type menuItem struct {
	op     operation
	title  string
	desc   string
	prompt string // empty when the operation takes no input
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

var _ list.Item = menuItem{}

func menuItems() []list.Item {
	return []list.Item{
		menuItem{op: opArtist, title: "Artist", desc: "Look up an artist by id", prompt: "Artist id"},
		menuItem{op: opTrack, title: "Track", desc: "Look up a track by id", prompt: "Track id"},
		menuItem{op: opPlaylist, title: "Playlist", desc: "Look up a playlist by id", prompt: "Playlist id"},
		menuItem{op: opRelated, title: "Related artists", desc: "Artists related to an artist", prompt: "Artist id"},
		menuItem{op: opFeatured, title: "Featured playlists", desc: "The current featured snapshot"},
		menuItem{op: opPosts, title: "Posts about a track", desc: "Social posts mentioning a track", prompt: "Track id"},
		menuItem{op: opSearchArtists, title: "Search artists", desc: "Keyword search the catalog", prompt: "Keyword"},
		menuItem{op: opSearchTracks, title: "Search tracks", desc: "Keyword search the catalog", prompt: "Keyword"},
		menuItem{op: opSearchPlaylists, title: "Search playlists", desc: "Keyword search the catalog", prompt: "Keyword"},
	}
}
