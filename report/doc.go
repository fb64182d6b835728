// Package report turns experiment records into result files and
// comparisons.
//
// Two file layouts are produced per algorithm:
//
//	<Name>_results.csv  comma separated, header
//	                    Vertices,Edges_Prob,Max_Weight,Ops_Count,Tested_Solutions,Search_Time
//	<Name>_results.txt  the same columns padded to tab stops of 30
//
// Search_Time is in seconds. ReadCSV loads a CSV file back, and Compare
// joins a heuristic run against an exact one to measure accuracy.
package report
