// Animename is a Go rendition of the anime character picker that sits on the
// anime_name_helper ComfyUI node. It fetches character records from the ComfyUI
// server, keeps a selection of them keyed by English name, and publishes that
// selection into the node's hidden selected_data widget so the graph can consume it.
package animename
