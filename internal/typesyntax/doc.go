// Package typesyntax reads sequence type text, such as "xs:string*" or
// "record(a, b? as ..?)", into seqtype values.
//
// Reading never fails. Input that stops early or does not fit the grammar
// yields the most general value that was recognized; a dangling name such as
// "xs:" becomes an item type whose name renders as the empty string.
package typesyntax
