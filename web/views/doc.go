// Package views renders the ideabloom pages as templ components.
//
// Components are written against templ.ComponentFunc and escape every
// dynamic value with templ.EscapeString. Interactivity comes from DataStar
// attributes: the form posts its signals to /generate and the server patches
// #results and #toast-container.
package views
