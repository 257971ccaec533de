// Package pagecheck inspects web pages for content problems. It discovers
// same-origin linked pages, reports duplicated text blocks in a page's main
// content, and submits page text to a grammar service for suggestions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, languagetool/).
package pagecheck
