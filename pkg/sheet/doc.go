// Package sheet decodes frame spreadsheets.
//
// A frame workbook has at least two sheets. The first lists members, one per
// row, with "Start Node" and "End Node" columns. The second lists nodes with
// "Node", "X", "Y" and "Z" columns. The first row of each sheet is its header;
// column names are matched case-insensitively and ignoring spaces, so
// "start node", "StartNode" and "Start Node" are the same column.
//
// Decoding happens in two steps:
//
//	wb, err := sheet.Decode(r)      // workbook → header-keyed rows
//	f, err := sheet.ToFrame(wb)     // rows → *frame.Frame
//
// [Read] and [Load] do both. Workbook decoding is delegated to excelize.
//
// # Errors
//
// An unreadable or corrupt workbook yields an errors.ErrCodeFileRead error.
// A workbook with fewer than two sheets, or with an empty member or node
// sheet, yields errors.ErrCodeMissingSheet. Non-numeric or missing
// coordinates are not errors; they read as 0.
package sheet
