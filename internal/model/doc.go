// Package model defines the core data structures shared by the showcase
// packages.
//
// # Slide
//
// Slide is one carousel item with its caption and rendered artwork:
//
//	slide := model.NewSlide("/slides/dragon.png", "")
//	fmt.Println(slide.Title) // "dragon"
//
// # Book
//
// Book is the publication offered for download, either through a direct URL
// or through a drive share link:
//
//	book := &model.Book{Title: "Taller de Lectura", DriveLink: shareURL}
//	target := book.Target()
//
// # Errors
//
// ErrInvalidArgument is the only error kind raised by the core packages. It is
// always wrapped with context and matched with errors.Is.
package model
