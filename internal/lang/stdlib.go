package lang

// Common C standard library and POSIX functions.
var cStdlib = map[string]bool{
	// stdio.h
	"printf": true, "fprintf": true, "sprintf": true, "snprintf": true,
	"scanf": true, "fscanf": true, "sscanf": true,
	"fopen": true, "fclose": true, "fread": true, "fwrite": true,
	"fgets": true, "fputs": true, "getc": true, "putc": true,
	"feof": true, "ferror": true, "fflush": true, "fseek": true,
	"ftell": true, "rewind": true, "perror": true,
	// stdlib.h
	"malloc": true, "calloc": true, "realloc": true, "free": true,
	"exit": true, "abort": true, "atexit": true,
	"atoi": true, "atof": true, "atol": true, "strtol": true, "strtod": true,
	"rand": true, "srand": true, "qsort": true, "bsearch": true,
	// string.h
	"strlen": true, "strcpy": true, "strncpy": true, "strcat": true,
	"strncat": true, "strcmp": true, "strncmp": true, "strchr": true,
	"strrchr": true, "strstr": true, "strtok": true,
	"memcpy": true, "memmove": true, "memset": true, "memcmp": true,
	// math.h
	"sin": true, "cos": true, "tan": true, "sqrt": true, "pow": true,
	"exp": true, "log": true, "floor": true, "ceil": true,
	// time.h
	"time": true, "clock": true, "difftime": true, "mktime": true,
	// unistd.h / POSIX
	"read": true, "write": true, "open": true, "close": true,
	"lseek": true, "getpid": true, "fork": true, "exec": true, "execve": true,
	// ctype.h
	"isalpha": true, "isdigit": true, "isalnum": true, "isspace": true,
	"toupper": true, "tolower": true,
}

// Qualified-call prefixes from common java.lang classes.
var javaStdlibPrefixes = []string{
	"System.", "String.", "Integer.", "Long.", "Double.", "Math.",
	"Thread.", "Object.", "Class.", "Exception.",
}

var pythonBuiltins = map[string]bool{
	"print": true, "len": true, "range": true, "enumerate": true,
	"zip": true, "map": true, "filter": true, "sum": true, "min": true,
	"max": true, "sorted": true, "list": true, "dict": true, "set": true,
	"tuple": true, "str": true, "int": true, "float": true, "bool": true,
	"open": true, "isinstance": true, "hasattr": true, "getattr": true,
	"setattr": true,
}
