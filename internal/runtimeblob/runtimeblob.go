// Package runtimeblob holds the fixed C source prepended to every
// emitted program: the dynamic integer List, the fixed-length Tuple,
// the string-keyed Dict, and the print/slice helpers the emitter's
// templates target.
package runtimeblob

// Source is the runtime blob, emitted verbatim as the first part of
// every generated C file.
const Source = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <stdbool.h>
#include <time.h>

typedef struct {
    int *data;
    int size;
    int cap;
} List;

typedef struct {
    int *data;
    int size;
} Tuple;

#define DICT_CAP 256

typedef struct {
    char *keys[DICT_CAP];
    int vals[DICT_CAP];
    int size;
} Dict;

static List new_list(void) {
    List l;
    l.size = 0;
    l.cap = 4;
    l.data = (int *)malloc((size_t)l.cap * sizeof(int));
    return l;
}

static void list_append(List *l, int v) {
    if (l->size >= l->cap) {
        l->cap *= 2;
        l->data = (int *)realloc(l->data, (size_t)l->cap * sizeof(int));
    }
    l->data[l->size++] = v;
}

static int *slice_arr(int *arr, int start, int end, int *out_len) {
    int len = end - start;
    if (len < 0) len = 0;
    int *out = (int *)malloc((size_t)(len > 0 ? len : 1) * sizeof(int));
    memcpy(out, arr + start, (size_t)len * sizeof(int));
    *out_len = len;
    return out;
}

static Tuple new_tuple(void) {
    Tuple t;
    t.size = 0;
    t.data = NULL;
    return t;
}

static Dict new_dict(void) {
    Dict d;
    d.size = 0;
    return d;
}

static void dset(Dict *d, const char *key, int val) {
    for (int i = 0; i < d->size; i++) {
        if (strcmp(d->keys[i], key) == 0) {
            d->vals[i] = val;
            return;
        }
    }
    if (d->size < DICT_CAP) {
        char *copy = (char *)malloc(strlen(key) + 1);
        strcpy(copy, key);
        d->keys[d->size] = copy;
        d->vals[d->size] = val;
        d->size++;
    }
}

static int dget(Dict *d, const char *key) {
    for (int i = 0; i < d->size; i++) {
        if (strcmp(d->keys[i], key) == 0) return d->vals[i];
    }
    return 0;
}

static void print_list(List *l) {
    printf("[");
    for (int i = 0; i < l->size; i++) {
        printf("%d", l->data[i]);
        if (i + 1 < l->size) printf(", ");
    }
    printf("]\n");
}

static void print_tuple(Tuple *t) {
    printf("(");
    for (int i = 0; i < t->size; i++) {
        printf("%d", t->data[i]);
        if (i + 1 < t->size) printf(", ");
    }
    printf(")\n");
}
`
